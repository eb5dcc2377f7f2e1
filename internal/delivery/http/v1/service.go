package v1

import (
	"context"
	"errors"
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/shipping"
	"storefront-backend/internal/usecase"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

// ShippingService is the slice of usecase.ShippingUsecase the handlers use.
type ShippingService interface {
	Quote(ctx context.Context, addr domain.Address, subtotal float64) (*domain.ShippingQuote, error)
	DryRunMatch(ctx context.Context, addr domain.Address) (*shipping.ZoneMatch, error)
	ListZones(ctx context.Context) ([]domain.ShippingZone, error)
	GetZone(ctx context.Context, id int32) (*domain.ShippingZone, error)
	CreateZone(ctx context.Context, req usecase.ShippingZoneRequest) (*domain.ShippingZone, error)
	UpdateZone(ctx context.Context, id int32, req usecase.ShippingZoneRequest) (*domain.ShippingZone, error)
	SetZoneEnabled(ctx context.Context, id int32, enabled bool) error
	DeleteZone(ctx context.Context, id int32) error
	ExportSnapshot(ctx context.Context) (string, error)
}

var _ ShippingService = (*usecase.ShippingUsecase)(nil)

// writeServiceError maps domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrZoneNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidZone), errors.Is(err, domain.ErrInvalidSubtotal):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSnapshotUnavailable):
		utils.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Handler: request failed")
		utils.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
