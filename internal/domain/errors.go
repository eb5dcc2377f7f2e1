package domain

import "errors"

var (
	ErrZoneNotFound        = errors.New("shipping zone not found")
	ErrInvalidZone         = errors.New("invalid shipping zone")
	ErrInvalidSubtotal     = errors.New("invalid subtotal")
	ErrSnapshotUnavailable = errors.New("snapshot storage not configured")
)
