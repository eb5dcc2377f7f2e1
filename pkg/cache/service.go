package cache

import "time"

// Keys shared by the handlers and usecases that read and invalidate them.
const (
	KeyActiveShippingZones = "shipping:zones:active"
	KeyConfigEnums         = "system:config:enums"
)

// CacheService defines the behavior for caching mechanisms
type CacheService interface {
	// Get returns the cached value and whether it was present and unexpired.
	Get(key string) (interface{}, bool)

	// Set stores value for duration. A zero duration uses the cache default.
	Set(key string, value interface{}, duration time.Duration)

	Delete(key string)
}
