package dto

// RouteRequest fields are optional except start and end; pointers
// distinguish "omitted" (use the default) from an explicit zero.
type RouteRequest struct {
	Start            string   `json:"start" validate:"required"`
	End              string   `json:"end" validate:"required"`
	SortBy           string   `json:"sort_by" validate:"omitempty,oneof=distance time efficiency composite"`
	MaxRoutes        *int     `json:"max_routes" validate:"omitempty,gte=0,lte=50"`
	Landmark         string   `json:"landmark"`
	MaxDetour        *float64 `json:"max_detour" validate:"omitempty,gte=0"`
	UseOptimizations *bool    `json:"use_optimizations"`
}

type SegmentResponse struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type RouteResponse struct {
	Path      string            `json:"path"`
	Stops     []string          `json:"stops"`
	Segments  []SegmentResponse `json:"segments"`
	Distance  float64           `json:"distance"`
	Minutes   float64           `json:"minutes"`
	Algorithm string            `json:"algorithm"`
}

type RouteResultsResponse struct {
	Routes     []RouteResponse `json:"routes"`
	TotalFound int             `json:"total_found"`
	Summary    map[string]int  `json:"summary"`
}
