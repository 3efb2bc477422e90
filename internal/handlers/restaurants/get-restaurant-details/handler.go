// internal/handlers/restaurants/get-restaurant-details/handler.go
package getrestaurantdetails

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/models"
)

const (
	Route     = "/api/restaurant/:placeId"
	Operation = "getRestaurantDetails"
)

type PlacesClient interface {
	GetPlace(ctx context.Context, placeID, fieldMask string) (*places.Place, error)
}

type Handler struct {
	config *Config
	client PlacesClient
	logger logger.Logger
	errors *apperrors.ErrorHandler
}

func NewHandler(config *Config, client PlacesClient, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"operation": Operation})
	return &Handler{
		config: config,
		client: client,
		logger: l,
		errors: apperrors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(c *gin.Context) {
	input := Input{PlaceID: c.Param("placeId")}

	output, err := h.Execute(c.Request.Context(), &input)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	placeID := strings.TrimSpace(input.PlaceID)
	if placeID == "" {
		return nil, apperrors.NewInvalidArgumentError("Place ID is required")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	place, err := h.client.GetPlace(ctx, placeID, places.DetailsFieldMask)
	if err != nil {
		return nil, apperrors.NewUpstreamError(Operation, err)
	}

	name := place.Name()
	if name == "" {
		name = models.UnknownName
	}

	var description string
	if place.EditorialSummary != nil {
		description = strings.TrimSpace(place.EditorialSummary.Text)
	}

	return &Output{
		Name:        name,
		Rating:      place.Rating,
		Phone:       place.NationalPhoneNumber,
		Website:     place.WebsiteURI,
		Description: description,
	}, nil
}
