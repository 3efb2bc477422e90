// internal/handlers/likes/like-restaurant/handler.go
package likerestaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/metrics"
)

const (
	Route     = "/api/like"
	Operation = "like"

	statusSuccess = "success"
)

type LikedStore interface {
	Add(placeID string) bool
	Len() int
}

type Handler struct {
	config *Config
	store  LikedStore
	logger logger.Logger
	errors *apperrors.ErrorHandler
}

func NewHandler(config *Config, store LikedStore, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"operation": Operation})
	return &Handler{
		config: config,
		store:  store,
		logger: l,
		errors: apperrors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.config.MaxBodyBytes))
	if err != nil {
		h.errors.Respond(c, apperrors.NewInvalidArgumentError("Invalid request body"))
		return
	}

	output, err := h.Execute(c.Request.Context(), body)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// Execute validates a raw {"place_id": "..."} body and adds the id to the
// liked set. Liking an id twice is not an error.
func (h *Handler) Execute(ctx context.Context, body []byte) (*Output, error) {
	input, err := parseInput(body)
	if err != nil {
		return nil, err
	}

	added := h.store.Add(input.PlaceID)
	size := h.store.Len()
	metrics.LikedRestaurants.Set(float64(size))

	h.logger.Info("restaurant liked", map[string]interface{}{
		"placeId": input.PlaceID,
		"new":     added,
		"total":   size,
	})

	return &Output{
		Status:  statusSuccess,
		Message: fmt.Sprintf("Restaurant %s liked", input.PlaceID),
	}, nil
}

func parseInput(body []byte) (*Input, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	result, err := requestSchema.ValidateJSON(body)
	if err != nil {
		return nil, apperrors.NewInvalidArgumentError("Invalid request body")
	}
	if !result.Valid {
		stdErr := apperrors.NewInvalidArgumentError("place_id is required")
		stdErr.Details = "invalid fields: " + strings.Join(result.Fields(), ", ")
		return nil, stdErr
	}

	var input Input
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, apperrors.NewInvalidArgumentError("Invalid request body")
	}
	input.PlaceID = strings.TrimSpace(input.PlaceID)
	return &input, nil
}
