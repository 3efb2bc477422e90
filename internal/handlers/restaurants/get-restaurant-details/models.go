// internal/handlers/restaurants/get-restaurant-details/models.go
package getrestaurantdetails

import "restaurant-finder/internal/models"

type Input struct {
	PlaceID string `uri:"placeId"`
}

type Output = models.RestaurantDetail
