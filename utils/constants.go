// File: utils/constants.go
package utils

import "time"

// CheckoutStatePrefix is the Redis key prefix for in-progress checkout sessions.
const CheckoutStatePrefix = "checkout:"

// CheckoutStateTTL is how long an abandoned checkout survives.
const CheckoutStateTTL = 30 * time.Minute

// ConfirmStatePrefix is the Redis key prefix for one-shot confirmation records.
const ConfirmStatePrefix = "confirm:"

// ConfirmStateTTL bounds the window between booking creation and the confirmation render.
const ConfirmStateTTL = 10 * time.Minute

// CatalogCachePrefix is the Redis key prefix for cached catalog listings.
const CatalogCachePrefix = "experiences:"

// CatalogCacheTTL is the time-to-live for cached catalog listings.
const CatalogCacheTTL = 60 * time.Second
