package dto

type LocationResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type DistanceResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Minutes  float64 `json:"minutes"`
}

type NearbyResponse struct {
	Source    string   `json:"source"`
	Radius    float64  `json:"radius"`
	Landmark  string   `json:"landmark,omitempty"`
	Locations []string `json:"locations"`
}

type ListLandmarksResponse struct {
	Categories []string `json:"categories"`
}
