// internal/handlers/restaurants/get-restaurants/models.go
package getrestaurants

import "restaurant-finder/internal/models"

type Input struct {
	Lat      string `form:"lat"`
	Lon      string `form:"lon"`
	Location string `form:"location"`
}

type Output = []models.RestaurantSummary

type coordinates struct {
	lat float64
	lon float64
}
