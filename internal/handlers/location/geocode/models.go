// internal/handlers/location/geocode/models.go
package geocode

import "restaurant-finder/internal/models"

type Input struct {
	Address string `form:"address"`
}

type Output = models.GeocodeResult
