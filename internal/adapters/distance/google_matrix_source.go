package distance

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"campus-route-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	maps "googlemaps.github.io/maps"
)

// maxDestinationsPerRequest stays within the Distance Matrix API limit of
// 25 destinations per request.
const maxDestinationsPerRequest = 25

// distanceMatrixAPI is the subset of *maps.Client used here.
type distanceMatrixAPI interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}

// GoogleMatrixSource implements MatrixSource by asking the Google Distance
// Matrix API for walking distances between a fixed list of campus places.
//
// It coordinates:
//   - Persistent distance caching
//   - Batched API calls with retry/backoff
//   - Conversion from meters to the matrix's kilometer text cells
type GoogleMatrixSource struct {
	client        distanceMatrixAPI
	locations     []string
	addressSuffix string
	cache         ports.DistanceCache
}

// NewGoogleMatrixSource builds a source for the given canonical names.
// addressSuffix (for example ", Legon, Ghana") is appended to each name when
// querying so that short campus names geocode unambiguously. cache may be nil.
func NewGoogleMatrixSource(
	apiKey string,
	locations []string,
	addressSuffix string,
	cache ports.DistanceCache,
) (*GoogleMatrixSource, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}

	return newGoogleMatrixSource(client, locations, addressSuffix, cache)
}

func newGoogleMatrixSource(
	client distanceMatrixAPI,
	locations []string,
	addressSuffix string,
	cache ports.DistanceCache,
) (*GoogleMatrixSource, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("google matrix source: %w", domain.ErrEmptyMatrix)
	}

	return &GoogleMatrixSource{
		client:        client,
		locations:     locations,
		addressSuffix: addressSuffix,
		cache:         cache,
	}, nil
}

// LoadMatrix fills every off-diagonal cell from cache or the API. Pairs the
// API cannot route are left empty, which the engine treats as no edge.
func (s *GoogleMatrixSource) LoadMatrix(ctx context.Context) (_ *domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "matrix.google.Load")(&err)

	n := len(s.locations)
	cells := make([][]string, n+1)
	cells[0] = append([]string{""}, s.locations...)

	for i, origin := range s.locations {
		others := make([]string, 0, n-1)
		for j, d := range s.locations {
			if j != i {
				others = append(others, d)
			}
		}

		results, err := s.rowDistances(ctx, origin, others)
		if err != nil {
			return nil, fmt.Errorf("load google matrix: row %q: %w", origin, err)
		}

		row := make([]string, n+1)
		row[0] = origin
		for j, d := range s.locations {
			if j == i {
				row[j+1] = "0"
				continue
			}
			if r, ok := results[d]; ok && r.DistanceMeters > 0 {
				row[j+1] = strconv.FormatFloat(float64(r.DistanceMeters)/1000, 'f', 3, 64)
			}
		}
		cells[i+1] = row
	}

	return domain.NewDistanceMatrix(cells), nil
}

// rowDistances resolves one origin against many destinations, consulting
// the cache before issuing API calls.
func (s *GoogleMatrixSource) rowDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]ports.DistanceResult, error) {
	hits := make(map[string]ports.DistanceResult)
	if s.cache != nil {
		var err error
		hits, err = s.cache.GetMany(ctx, origin, destinations)
		if err != nil {
			return nil, fmt.Errorf("get distance cache: %w", err)
		}
	}

	misses := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if _, ok := hits[d]; !ok {
			misses = append(misses, d)
		}
	}

	fetched := make(map[string]ports.DistanceResult, len(misses))
	for start := 0; start < len(misses); start += maxDestinationsPerRequest {
		end := min(start+maxDestinationsPerRequest, len(misses))

		batch, err := s.fetchRow(ctx, origin, misses[start:end])
		if err != nil {
			return nil, err
		}
		for k, v := range batch {
			fetched[k] = v
		}
	}

	if s.cache != nil && len(fetched) > 0 {
		if err := s.cache.PutMany(ctx, origin, fetched); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	out := make(map[string]ports.DistanceResult, len(hits)+len(fetched))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fetched {
		out[k] = v
	}
	return out, nil
}

func (s *GoogleMatrixSource) fetchRow(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]ports.DistanceResult, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{s.address(origin)},
		Destinations: make([]string, 0, len(destinations)),
		Mode:         maps.TravelModeWalking,
		Units:        maps.UnitsMetric,
	}
	for _, d := range destinations {
		req.Destinations = append(req.Destinations, s.address(d))
	}

	resp, err := withRetry(ctx, func() (*maps.DistanceMatrixResponse, error) {
		return s.client.DistanceMatrix(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}

	if len(resp.Rows) != 1 || len(resp.Rows[0].Elements) != len(destinations) {
		return nil, fmt.Errorf("distance matrix response shape: %d rows for 1 origin", len(resp.Rows))
	}

	out := make(map[string]ports.DistanceResult, len(destinations))
	for i, el := range resp.Rows[0].Elements {
		if el == nil || el.Status != "OK" {
			continue
		}
		out[destinations[i]] = ports.DistanceResult{
			DistanceMeters:  el.Distance.Meters,
			DurationSeconds: int(el.Duration.Seconds()),
		}
	}
	return out, nil
}

func (s *GoogleMatrixSource) address(name string) string {
	return strings.TrimSpace(name) + s.addressSuffix
}
