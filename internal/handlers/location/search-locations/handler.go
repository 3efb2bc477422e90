// internal/handlers/location/search-locations/handler.go
package searchlocations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/models"
)

const (
	Route     = "/api/search-locations"
	Operation = "searchLocations"
)

type PlacesClient interface {
	TextSearch(ctx context.Context, query string) (*places.TextSearchResponse, error)
}

type Handler struct {
	config  *Config
	client  PlacesClient
	logger  logger.Logger
	errors  *apperrors.ErrorHandler
	allowed map[string]struct{}
}

func NewHandler(config *Config, client PlacesClient, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"operation": Operation})

	allowed := make(map[string]struct{}, len(config.AllowedTypes))
	for _, t := range config.AllowedTypes {
		allowed[t] = struct{}{}
	}

	return &Handler{
		config:  config,
		client:  client,
		logger:  l,
		errors:  apperrors.NewErrorHandler(l),
		allowed: allowed,
	}
}

func (h *Handler) Handle(c *gin.Context) {
	input := Input{Query: c.Query("query")}

	output, err := h.Execute(c.Request.Context(), &input)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// Execute returns up to Limit city, region or country matches for a free-text
// query. The result is never nil.
func (h *Handler) Execute(ctx context.Context, input *Input) (Output, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, apperrors.NewInvalidArgumentError("Query parameter is required")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	resp, err := h.client.TextSearch(ctx, query)
	if err != nil {
		return nil, apperrors.NewUpstreamError(Operation, err)
	}

	switch resp.Status {
	case places.StatusOK:
	case places.StatusZeroResults:
		return Output{}, nil
	default:
		msg := resp.ErrorMessage
		if msg == "" {
			msg = fmt.Sprintf("text search returned status %s", resp.Status)
		}
		return nil, apperrors.NewUpstreamError(Operation, errors.New(msg))
	}

	suggestions := make(Output, 0, h.config.Limit)
	for _, r := range resp.Results {
		if len(suggestions) >= h.config.Limit {
			break
		}
		if !h.isLocation(r.Types) {
			continue
		}
		types := r.Types
		if types == nil {
			types = []string{}
		}
		suggestions = append(suggestions, models.LocationSuggestion{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			FormattedAddress: r.FormattedAddress,
			Types:            types,
		})
	}

	h.logger.Debug("locations matched", map[string]interface{}{
		"query":   query,
		"results": len(resp.Results),
		"kept":    len(suggestions),
	})

	return suggestions, nil
}

func (h *Handler) isLocation(types []string) bool {
	for _, t := range types {
		if _, ok := h.allowed[t]; ok {
			return true
		}
	}
	return false
}
