// internal/handlers/likes/like-restaurant/models.go
package likerestaurant

import (
	"restaurant-finder/internal/common/validation"
	"restaurant-finder/internal/models"
)

type Input struct {
	PlaceID string `json:"place_id"`
}

type Output = models.LikeAck

var requestSchema = validation.MustCompile(map[string]interface{}{
	"$schema":  "http://json-schema.org/draft-07/schema#",
	"type":     "object",
	"required": []interface{}{"place_id"},
	"properties": map[string]interface{}{
		"place_id": map[string]interface{}{
			"type":    "string",
			"pattern": `\S`,
		},
	},
})
