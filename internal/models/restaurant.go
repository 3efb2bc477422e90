package models

import "encoding/json"

const (
	UnknownName        = "Unknown"
	NoAddressAvailable = "No address available"
	RatingNotAvailable = "N/A"
)

// RestaurantSummary is one entry of a nearby restaurant search.
type RestaurantSummary struct {
	PlaceID  string  `json:"place_id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
	Address  string  `json:"address"`
}

// RestaurantDetail is the projection of a place details lookup. Nil pointers
// serialize as null.
type RestaurantDetail struct {
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Description string   `json:"description"`
}

// LikedRestaurant is a liked place resolved for display.
type LikedRestaurant struct {
	PlaceID  string      `json:"place_id"`
	Name     string      `json:"name"`
	Rating   LikedRating `json:"rating"`
	ImageURL string      `json:"image_url"`
	Address  string      `json:"address"`
}

// LikedRating is a rating that serializes as "N/A" when unknown.
type LikedRating struct {
	Value *float64
}

func (r LikedRating) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return json.Marshal(RatingNotAvailable)
	}
	return json.Marshal(*r.Value)
}

func (r *LikedRating) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		r.Value = &v
		return nil
	}
	r.Value = nil
	return nil
}

// LikeAck acknowledges a like.
type LikeAck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthStatus is the health check payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
