// File: utils/constants.go
package utils

import "time"

// SlotCachePrefix is the prefix used for Redis availability-slot cache keys.
const SlotCachePrefix = "availability:slots:"

// SlotCacheTTL is the time-to-live for availability-slot cache entries.
const SlotCacheTTL = 5 * time.Minute
