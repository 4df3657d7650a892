package constants

import "time"

// Pokémon Provider
const (
	// DefaultAPIBaseURL is the public read-only PokeAPI endpoint
	DefaultAPIBaseURL = "https://pokeapi.co/api/v2"

	// CacheExpiration is how long a cached response stays valid
	CacheExpiration = 24 * time.Hour

	// MaxCacheSize is the number of cached responses kept before the oldest is evicted
	MaxCacheSize = 100

	// ListMaxOffset is the upper bound for random list page offsets
	ListMaxOffset = 1200

	// MinListBatch is the smallest list page requested per batch
	MinListBatch = 20

	// OverFetchFactor multiplies the required count to absorb failed lookups
	OverFetchFactor = 2

	// FetchConcurrency bounds parallel detail lookups
	FetchConcurrency = 8

	// RequestTimeout bounds a single HTTP request
	RequestTimeout = 10 * time.Second
)
