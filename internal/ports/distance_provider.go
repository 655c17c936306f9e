package ports

import "context"

// Walking distance and duration between two named places, as reported by
// an external routing service.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for a persistent cache of external distance lookups.
type DistanceCache interface {
	// Return cached results from one origin to any of the destinations.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
	// Store results for a single origin.
	PutMany(ctx context.Context, origin string, results map[string]DistanceResult) error
}
