package services

import (
	"campus-route-service/internal/domain"
	"campus-route-service/internal/platform/obs"
	"context"
	"fmt"
	"math"
	"time"
)

// multiPathAttempts is how many times the multi-path heuristic entry point
// is asked for an alternative.
const multiPathAttempts = 3

type PlannerOptions struct {
	Tuning        Tuning
	Taxonomy      Taxonomy
	DisplaySuffix string
}

func DefaultPlannerOptions() PlannerOptions {
	return PlannerOptions{
		Tuning:   DefaultTuning(),
		Taxonomy: DefaultTaxonomy(),
	}
}

// Planner is one immutable planning session: the campus graph, its
// all-pairs table and the tuning in force. It is safe for concurrent use.
type Planner struct {
	graph    *domain.CampusGraph
	pairs    *AllPairs
	tuning   Tuning
	taxonomy Taxonomy
	loadedAt time.Time
}

func NewPlanner(m *domain.DistanceMatrix, opts PlannerOptions) (*Planner, error) {
	if len(opts.Taxonomy) == 0 {
		opts.Taxonomy = DefaultTaxonomy()
	}

	g, err := domain.NewCampusGraph(m, opts.DisplaySuffix, opts.Tuning.SegmentFallback)
	if err != nil {
		return nil, fmt.Errorf("new planner: %w", err)
	}

	pairs, err := NewAllPairs(g)
	if err != nil {
		return nil, fmt.Errorf("new planner: %w", err)
	}

	return &Planner{
		graph:    g,
		pairs:    pairs,
		tuning:   opts.Tuning,
		taxonomy: opts.Taxonomy,
		loadedAt: time.Now(),
	}, nil
}

func (p *Planner) Graph() *domain.CampusGraph { return p.graph }

func (p *Planner) AllPairs() *AllPairs { return p.pairs }

func (p *Planner) Tuning() Tuning { return p.tuning }

func (p *Planner) Taxonomy() Taxonomy { return p.taxonomy }

func (p *Planner) LoadedAt() time.Time { return p.loadedAt }

// Resolve maps a query string onto a graph index.
func (p *Planner) Resolve(query string) (int, error) {
	i, ok := p.graph.Resolve(query)
	if !ok {
		return -1, fmt.Errorf("resolve %q: %w", query, domain.ErrUnknownLocation)
	}
	return i, nil
}

// FindBestRoutes runs every applicable engine for the pair, tags each
// result, removes duplicate paths, ranks by preference and truncates.
// TotalFound counts the distinct routes; Summary counts the returned ones.
//
// An unknown start or end yields empty results and ErrUnknownLocation.
// Engines that find nothing contribute no routes; that is never an error.
func (p *Planner) FindBestRoutes(
	ctx context.Context,
	start string,
	end string,
	prefs domain.RoutePreferences,
) (_ domain.RouteResults, err error) {
	defer obs.Time(ctx, "planner.FindBestRoutes")(&err)

	empty := domain.RouteResults{Routes: []*domain.Route{}, Summary: map[domain.Algorithm]int{}}

	s, err := p.Resolve(start)
	if err != nil {
		return empty, fmt.Errorf("find best routes: %w", err)
	}
	e, err := p.Resolve(end)
	if err != nil {
		return empty, fmt.Errorf("find best routes: %w", err)
	}

	if prefs.SortBy == "" {
		prefs.SortBy = domain.SortByDistance
	}

	var candidates []*domain.Route
	if s == e {
		candidates = []*domain.Route{p.sameLocation(s)}
	} else {
		candidates = p.collect(s, e, prefs)
	}

	distinct := DedupRoutes(candidates)
	top := TopRoutes(distinct, prefs.SortBy, prefs.MaxRoutes)

	// Summary credits only the routes actually returned.
	summary := make(map[domain.Algorithm]int)
	for _, r := range top {
		summary[r.Algorithm]++
	}

	return domain.RouteResults{
		Routes:     top,
		TotalFound: len(distinct),
		Summary:    summary,
	}, nil
}

// collect runs the engines in a fixed order so that, after dedup, the
// earliest engine to find a path keeps credit for it.
func (p *Planner) collect(s, e int, prefs domain.RoutePreferences) []*domain.Route {
	g, t := p.graph, p.tuning
	out := []*domain.Route{}

	add := func(alg domain.Algorithm, path Path, err error) {
		if err != nil || len(path.Stops) < 2 {
			return
		}
		out = append(out, t.buildRoute(g, alg, path))
	}

	path, err := ShortestPath(g, s, e)
	add(domain.AlgorithmDijkstra, path, err)

	path, err = HeuristicPath(g, s, e)
	add(domain.AlgorithmAStar, path, err)

	path, err = NearestNeighborRoute(g, s, e, t)
	add(domain.AlgorithmGreedy, path, err)

	path, err = MemoizedRoute(g, s, e, t)
	add(domain.AlgorithmDynamic, path, err)

	direct, hasDirect := p.referenceDistance(s, e)

	if prefs.UseOptimizations {
		if hasDirect {
			add(domain.AlgorithmDirect, DirectRoute(g, s, e, direct, t), nil)
			add(domain.AlgorithmAlternative, AlternativeRoute(g, s, e, direct, 1, t), nil)
			add(domain.AlgorithmAlternative, AlternativeRoute(g, s, e, direct, 2, t), nil)
		}
		for _, mp := range HeuristicPaths(g, s, e, multiPathAttempts) {
			add(domain.AlgorithmAStarMulti, mp, nil)
		}
	}

	if prefs.Landmark != "" && hasDirect {
		for _, lp := range LandmarkRoutes(g, p.taxonomy, s, e, prefs.Landmark, direct, prefs.MaxDetour, t.LandmarkLimit) {
			add(domain.AlgorithmLandmark, lp, nil)
		}
	}

	return out
}

// referenceDistance is the direct edge between s and e, or the all-pairs
// shortest distance when no direct edge exists.
func (p *Planner) referenceDistance(s, e int) (float64, bool) {
	if d, ok := p.graph.Edge(s, e); ok {
		return d, true
	}
	d := p.pairs.Between(s, e)
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

func (p *Planner) sameLocation(i int) *domain.Route {
	return &domain.Route{
		Stops:     []string{p.graph.DisplayName(i)},
		Segments:  []domain.Segment{},
		Distance:  0,
		Minutes:   0,
		Algorithm: domain.AlgorithmSameSpot,
	}
}

// NearbyLandmarks resolves source and lists adjacent landmarks within radius.
func (p *Planner) NearbyLandmarks(source string, radius float64, term string) ([]string, error) {
	s, err := p.Resolve(source)
	if err != nil {
		return nil, fmt.Errorf("nearby landmarks: %w", err)
	}
	return NearbyLandmarks(p.graph, p.taxonomy, s, radius, term), nil
}

// Distances returns single-source shortest distances from a named location.
func (p *Planner) Distances(source string) (map[string]float64, error) {
	s, err := p.Resolve(source)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	return ShortestDistances(p.graph, s)
}
