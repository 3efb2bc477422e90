// internal/handlers/location/search-locations/models.go
package searchlocations

import "restaurant-finder/internal/models"

type Input struct {
	Query string `form:"query"`
}

type Output = []models.LocationSuggestion
