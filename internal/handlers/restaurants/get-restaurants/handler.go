// internal/handlers/restaurants/get-restaurants/handler.go
package getrestaurants

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/handlers/location/geocode"
	"restaurant-finder/internal/models"
)

const (
	Route     = "/api/restaurants"
	Operation = "getRestaurants"

	includedType = "restaurant"
)

type PlacesClient interface {
	SearchNearby(ctx context.Context, body *places.NearbyRequest, fieldMask string) (*places.NearbyResponse, error)
	PhotoURL(photoName string, maxPx int) string
}

// Geocoder resolves a location name into coordinates.
type Geocoder interface {
	Execute(ctx context.Context, input *geocode.Input) (*geocode.Output, error)
}

type Handler struct {
	config   *Config
	client   PlacesClient
	geocoder Geocoder
	logger   logger.Logger
	errors   *apperrors.ErrorHandler
}

func NewHandler(config *Config, client PlacesClient, geocoder Geocoder, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"operation": Operation})
	return &Handler{
		config:   config,
		client:   client,
		geocoder: geocoder,
		logger:   l,
		errors:   apperrors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(c *gin.Context) {
	input := Input{
		Lat:      c.Query("lat"),
		Lon:      c.Query("lon"),
		Location: c.Query("location"),
	}

	output, err := h.Execute(c.Request.Context(), &input)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// Execute searches for well-rated restaurants with photos around the given
// coordinates, or around the geocoded location name when no coordinates are given.
func (h *Handler) Execute(ctx context.Context, input *Input) (Output, error) {
	coords, err := h.resolveCoordinates(ctx, input)
	if err != nil {
		return nil, err
	}

	req := &places.NearbyRequest{
		IncludedTypes:  []string{includedType},
		MaxResultCount: h.config.MaxResults,
		LocationRestriction: places.LocationRestriction{
			Circle: places.Circle{
				Center: places.Center{Latitude: coords.lat, Longitude: coords.lon},
				Radius: h.config.Radius,
			},
		},
	}

	searchCtx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	resp, err := h.client.SearchNearby(searchCtx, req, places.NearbyFieldMask)
	if err != nil {
		return nil, apperrors.NewUpstreamError(Operation, err)
	}

	restaurants := make(Output, 0, len(resp.Places))
	for i := range resp.Places {
		p := &resp.Places[i]
		if !h.qualifies(p) {
			continue
		}
		restaurants = append(restaurants, h.summarize(p))
	}

	h.logger.Debug("nearby search completed", map[string]interface{}{
		"lat":      coords.lat,
		"lon":      coords.lon,
		"upstream": len(resp.Places),
		"kept":     len(restaurants),
	})

	return restaurants, nil
}

func (h *Handler) resolveCoordinates(ctx context.Context, input *Input) (coordinates, error) {
	lat := strings.TrimSpace(input.Lat)
	lon := strings.TrimSpace(input.Lon)

	if lat != "" && lon != "" {
		return parseCoordinates(lat, lon)
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		return coordinates{}, apperrors.NewInvalidArgumentError("Latitude and longitude are required (or provide location name)")
	}

	result, err := h.geocoder.Execute(ctx, &geocode.Input{Address: location})
	if err != nil {
		return coordinates{}, err
	}
	return coordinates{lat: result.Lat, lon: result.Lon}, nil
}

func parseCoordinates(rawLat, rawLon string) (coordinates, error) {
	invalid := apperrors.NewInvalidArgumentError("Invalid latitude or longitude")

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || math.IsNaN(lat) || math.Abs(lat) > 90 {
		return coordinates{}, invalid
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || math.IsNaN(lon) || math.Abs(lon) > 180 {
		return coordinates{}, invalid
	}
	return coordinates{lat: lat, lon: lon}, nil
}

func (h *Handler) qualifies(p *places.Place) bool {
	return p.Rating != nil && *p.Rating >= h.config.MinRating && len(p.Photos) > 0
}

func (h *Handler) summarize(p *places.Place) models.RestaurantSummary {
	name := p.Name()
	if name == "" {
		name = models.UnknownName
	}
	address := p.FormattedAddress
	if address == "" {
		address = models.NoAddressAvailable
	}

	var rating float64
	if p.Rating != nil {
		rating = *p.Rating
	}

	var imageURL string
	if len(p.Photos) > 0 {
		imageURL = h.client.PhotoURL(p.Photos[0].Name, h.config.PhotoMaxPx)
	}

	return models.RestaurantSummary{
		PlaceID:  p.ID,
		Name:     name,
		Rating:   rating,
		ImageURL: imageURL,
		Address:  address,
	}
}
