package services

import (
	"campus-route-service/internal/domain"
	"math"
	"slices"
	"strings"
)

// Taxonomy is the closed set of landmark categories, checked in order.
type Taxonomy []domain.LandmarkCategory

func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: "banking", Triggers: []string{"bank"}, Keywords: []string{"bank", "atm", "gcb", "financial"}},
		{Name: "health", Triggers: []string{"hospital", "medical"}, Keywords: []string{"hospital", "clinic", "health", "medical"}},
		{Name: "library", Triggers: []string{"library"}, Keywords: []string{"library", "balme", "reading"}},
		{Name: "sports", Triggers: []string{"sports", "gym", "stadium"}, Keywords: []string{"sports", "stadium", "field", "court", "pool", "gym"}},
		{Name: "dining", Triggers: []string{"food", "dining", "canteen"}, Keywords: []string{"canteen", "dining", "restaurant", "food", "market"}},
		{Name: "residential", Triggers: []string{"hall", "hostel", "residence"}, Keywords: []string{"hall", "hostel", "residence", "accommodation"}},
		{Name: "academic", Triggers: []string{"department", "school", "academic"}, Keywords: []string{"department", "school", "faculty", "college", "institute"}},
	}
}

// Category returns the first category the term triggers.
func (t Taxonomy) Category(term string) (domain.LandmarkCategory, bool) {
	for _, c := range t {
		if c.Triggered(term) {
			return c, true
		}
	}
	return domain.LandmarkCategory{}, false
}

// Matches reports whether a location name satisfies the landmark term:
// by category when the term selects one, else by plain containment.
func (t Taxonomy) Matches(term, locationName string) bool {
	if c, ok := t.Category(term); ok {
		return c.Describes(locationName)
	}
	q := strings.ToLower(strings.TrimSpace(term))
	return q != "" && strings.Contains(strings.ToLower(locationName), q)
}

func (t Taxonomy) Names() []string {
	out := make([]string, 0, len(t))
	for _, c := range t {
		out = append(out, c.Name)
	}
	return out
}

// LandmarkRoutes returns up to limit start->landmark->end routes whose
// detour over reference stays within maxDetour, shortest first. Both legs
// must be direct edges. reference is the direct distance between start and
// end; an infinite reference yields no routes.
func LandmarkRoutes(
	g *domain.CampusGraph,
	tax Taxonomy,
	start, end int,
	term string,
	reference float64,
	maxDetour float64,
	limit int,
) []Path {
	if math.IsInf(reference, 0) || math.IsNaN(reference) {
		return nil
	}

	out := []Path{}
	for i := 0; i < g.Len(); i++ {
		if i == start || i == end || !tax.Matches(term, g.Name(i)) {
			continue
		}
		to, ok := g.Edge(start, i)
		if !ok {
			continue
		}
		from, ok := g.Edge(i, end)
		if !ok {
			continue
		}
		if detour := to + from - reference; detour > maxDetour {
			continue
		}
		out = append(out, Path{Stops: []int{start, i, end}, Segments: []float64{to, from}})
	}

	slices.SortStableFunc(out, func(a, b Path) int {
		switch da, db := a.Distance(), b.Distance(); {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// NearbyLandmarks lists locations with a direct edge from source no longer
// than radius whose names match the landmark term.
func NearbyLandmarks(g *domain.CampusGraph, tax Taxonomy, source int, radius float64, term string) []string {
	out := []string{}
	for i := 0; i < g.Len(); i++ {
		d, ok := g.Edge(source, i)
		if !ok || d > radius {
			continue
		}
		if tax.Matches(term, g.Name(i)) {
			out = append(out, g.Name(i))
		}
	}
	return out
}
