package types

// Location is a searchable place (city or airport) from the bundled
// locations file. Records are loaded once and never mutated.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // e.g. "City", "Airport"
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AirportCode *string `json:"airportCode"`
}

// HasAirportCode reports whether the location carries a non-empty airport code
func (l Location) HasAirportCode() bool {
	return l.AirportCode != nil && *l.AirportCode != ""
}
