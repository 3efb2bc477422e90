// internal/handlers/likes/list-liked/handler.go
package listliked

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/metrics"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/models"
)

const (
	Route     = "/api/liked-restaurants"
	Operation = "listLiked"
)

type PlacesClient interface {
	GetPlace(ctx context.Context, placeID, fieldMask string) (*places.Place, error)
	PhotoURL(photoName string, maxPx int) string
}

type LikedStore interface {
	List() []string
}

type Handler struct {
	config *Config
	client PlacesClient
	store  LikedStore
	logger logger.Logger
}

func NewHandler(config *Config, client PlacesClient, store LikedStore, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"operation": Operation}),
	}
}

func (h *Handler) Handle(c *gin.Context) {
	output := h.Execute(c.Request.Context())

	c.Header(SkippedHeader, strconv.Itoa(output.Skipped))
	c.JSON(http.StatusOK, output.Restaurants)
}

// Execute resolves every liked id, in id order. Ids whose lookup fails are
// logged and left out; the listing itself never fails. Once the budget or the
// request context runs out the remaining ids are skipped without a lookup.
func (h *Handler) Execute(ctx context.Context) *Output {
	ids := h.store.List()
	out := &Output{Restaurants: make([]models.LikedRestaurant, 0, len(ids))}

	if h.config.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Budget)
		defer cancel()
	}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			remaining := len(ids) - i
			out.Skipped += remaining
			metrics.LikedLookupsSkipped.Add(float64(remaining))
			h.logger.Warn("listing budget exhausted", map[string]interface{}{
				"skipped": remaining,
				"error":   err.Error(),
			})
			break
		}

		place, err := h.lookup(ctx, id)
		if err != nil {
			out.Skipped++
			metrics.LikedLookupsSkipped.Inc()
			fields := map[string]interface{}{
				"placeId": id,
				"error":   err.Error(),
			}
			var transportErr *places.TransportError
			if errors.As(err, &transportErr) {
				fields["cause"] = transportErr.Detail()
			}
			h.logger.Warn("skipping liked restaurant", fields)
			continue
		}
		out.Restaurants = append(out.Restaurants, h.project(id, place))
	}

	return out
}

func (h *Handler) lookup(ctx context.Context, id string) (*places.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()
	return h.client.GetPlace(ctx, id, places.LikedPlacesFieldMask)
}

func (h *Handler) project(id string, p *places.Place) models.LikedRestaurant {
	name := p.Name()
	if name == "" {
		name = models.UnknownName
	}
	address := p.FormattedAddress
	if address == "" {
		address = models.NoAddressAvailable
	}

	var imageURL string
	if len(p.Photos) > 0 {
		imageURL = h.client.PhotoURL(p.Photos[0].Name, h.config.PhotoMaxPx)
	}

	return models.LikedRestaurant{
		PlaceID:  id,
		Name:     name,
		Rating:   models.LikedRating{Value: p.Rating},
		ImageURL: imageURL,
		Address:  address,
	}
}
