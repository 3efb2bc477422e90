package models

// GeocodeResult is the first match of a geocoding lookup.
type GeocodeResult struct {
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
}

// LocationSuggestion is a city/region/country candidate for a search box.
type LocationSuggestion struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
}
