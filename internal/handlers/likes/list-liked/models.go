// internal/handlers/likes/list-liked/models.go
package listliked

import "restaurant-finder/internal/models"

// SkippedHeader carries the number of liked ids left out of a listing.
const SkippedHeader = "X-Skipped-Count"

type Output struct {
	Restaurants []models.LikedRestaurant
	Skipped     int
}
