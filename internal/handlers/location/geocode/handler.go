// internal/handlers/location/geocode/handler.go
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/places"
)

const (
	Route     = "/api/geocode"
	Operation = "geocode"
)

type PlacesClient interface {
	Geocode(ctx context.Context, address string) (*places.GeocodeResponse, error)
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
	input := Input{Address: c.Query("address")}

	output, err := h.Execute(c.Request.Context(), &input)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// Execute resolves an address to the first upstream match.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, apperrors.NewInvalidArgumentError("Address parameter is required")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	resp, err := h.client.Geocode(ctx, address)
	if err != nil {
		return nil, apperrors.NewUpstreamError(Operation, err)
	}

	if resp.Status != places.StatusOK || len(resp.Results) == 0 {
		h.logger.Info("address not resolved", map[string]interface{}{
			"address":      address,
			"status":       resp.Status,
			"errorMessage": resp.ErrorMessage,
		})
		return nil, apperrors.NewNotFoundError("Location not found", fmt.Sprintf("status: %s", resp.Status))
	}

	first := resp.Results[0]
	types := first.Types
	if types == nil {
		types = []string{}
	}

	return &Output{
		Lat:              first.Geometry.Location.Lat,
		Lon:              first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
		PlaceID:          first.PlaceID,
		Types:            types,
	}, nil
}
