package domain

// SortCriterion selects the ranking key for candidate routes.
// Lower is better for every criterion.
type SortCriterion string

const (
	SortByDistance   SortCriterion = "distance"
	SortByTime       SortCriterion = "time"
	SortByEfficiency SortCriterion = "efficiency"
	SortByComposite  SortCriterion = "composite"
)

// Valid reports whether c is one of the known criteria.
func (c SortCriterion) Valid() bool {
	switch c {
	case SortByDistance, SortByTime, SortByEfficiency, SortByComposite:
		return true
	}
	return false
}

type RoutePreferences struct {
	SortBy           SortCriterion
	MaxRoutes        int
	Landmark         string
	MaxDetour        float64
	UseOptimizations bool
}

func DefaultPreferences() RoutePreferences {
	return RoutePreferences{
		SortBy:           SortByDistance,
		MaxRoutes:        5,
		Landmark:         "",
		MaxDetour:        1.0,
		UseOptimizations: true,
	}
}

// RouteResults is the output of one planning query.
type RouteResults struct {
	Routes     []*Route
	TotalFound int
	Summary    map[Algorithm]int
}
