package usecase

import "time"

const (
	// DefaultPageLimit is used when a listing request omits a limit.
	DefaultPageLimit = 20

	// MaxPageLimit caps listing page sizes.
	MaxPageLimit = 100

	// accountCacheTTL bounds staleness of cached display reads. Balance
	// reads that precede a mutation never go through the cache.
	accountCacheTTL = 5 * time.Second
)
