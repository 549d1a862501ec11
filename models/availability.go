package models

// AvailabilityResponse is the upstream answer to a ZIP coverage check.
// From/To describe the service window, DistanceKm the distance to the
// nearest served area.
type AvailabilityResponse struct {
	Available  bool   `json:"available"`
	From       string `json:"from"`
	To         string `json:"to"`
	DistanceKm string `json:"distance_km"`
}
