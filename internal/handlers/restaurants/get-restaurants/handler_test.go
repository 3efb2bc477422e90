// internal/handlers/restaurants/get-restaurants/handler_test.go
package getrestaurants

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant-finder/internal/common/errors"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/common/places/placestest"
	"restaurant-finder/internal/handlers/location/geocode"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, upstream *placestest.Server) *Handler {
	log := logger.NewTestLogger(t)
	client := upstream.Client()
	geocoder := geocode.NewHandler(&geocode.Config{Timeout: 2 * time.Second}, client, log)
	return NewHandler(LoadConfig(), client, geocoder, log)
}

func seedRestaurants(upstream *placestest.Server) {
	unrated := placestest.Restaurant("unrated", "Mystery Grill", 0, 2)
	unrated.Rating = nil

	nameless := placestest.Restaurant("nameless", "", 4.1, 1)
	nameless.DisplayName = nil
	nameless.FormattedAddress = ""

	upstream.SetNearby(
		placestest.Restaurant("good", "Good Eats", 4.5, 2),
		placestest.Restaurant("low", "Low Rated", 3.9, 3),
		placestest.Restaurant("nophoto", "No Photo Cafe", 4.8, 0),
		placestest.Restaurant("edge", "Exactly Four", 4.0, 1),
		unrated,
		nameless,
	)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Coordinates(t *testing.T) {
	upstream := placestest.New(t)
	seedRestaurants(upstream)
	handler := createTestHandler(t, upstream)

	output, err := handler.Execute(context.Background(), &Input{Lat: "30.2672", Lon: "-97.7431"})

	require.NoError(t, err)
	require.Len(t, output, 3)

	assert.Equal(t, "good", output[0].PlaceID)
	assert.Equal(t, "Good Eats", output[0].Name)
	assert.Equal(t, 4.5, output[0].Rating)
	assert.Equal(t, "Good Eats Street, Springfield", output[0].Address)
	assert.Equal(t, upstream.Client().PhotoURL("places/good/photos/ref0", 800), output[0].ImageURL)

	assert.Equal(t, "edge", output[1].PlaceID)

	assert.Equal(t, "nameless", output[2].PlaceID)
	assert.Equal(t, "Unknown", output[2].Name)
	assert.Equal(t, "No address available", output[2].Address)

	requests := upstream.NearbyRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, []string{"restaurant"}, requests[0].IncludedTypes)
	assert.Equal(t, 20, requests[0].MaxResultCount)
	assert.Equal(t, 5000.0, requests[0].LocationRestriction.Circle.Radius)
	assert.Equal(t, 30.2672, requests[0].LocationRestriction.Circle.Center.Latitude)
	assert.Equal(t, -97.7431, requests[0].LocationRestriction.Circle.Center.Longitude)
	assert.Equal(t, 0, upstream.Calls("geocode"))
}

func TestHandler_Execute_ImageURL(t *testing.T) {
	upstream := placestest.New(t)
	upstream.SetNearby(placestest.Restaurant("p1", "Pho King", 4.6, 1))

	output, err := createTestHandler(t, upstream).Execute(context.Background(), &Input{Lat: "1", Lon: "2"})
	require.NoError(t, err)
	require.Len(t, output, 1)

	u, err := url.Parse(output[0].ImageURL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/places/p1/photos/ref0/media", u.Path)
	assert.Equal(t, "800", u.Query().Get("maxHeightPx"))
	assert.Equal(t, "800", u.Query().Get("maxWidthPx"))
	assert.Equal(t, placestest.APIKey, u.Query().Get("key"))
}

func TestHandler_Execute_LocationMatchesCoordinates(t *testing.T) {
	upstream := placestest.New(t)
	seedRestaurants(upstream)
	upstream.SetGeocode("Austin, TX", placestest.Geocoded("austin", "Austin, TX, USA", 30.2672, -97.7431))
	handler := createTestHandler(t, upstream)

	byName, err := handler.Execute(context.Background(), &Input{Location: "Austin, TX"})
	require.NoError(t, err)

	byCoords, err := handler.Execute(context.Background(), &Input{Lat: "30.2672", Lon: "-97.7431"})
	require.NoError(t, err)

	assert.Equal(t, byCoords, byName)
	assert.Equal(t, 1, upstream.Calls("geocode"))

	requests := upstream.NearbyRequests()
	require.Len(t, requests, 2)
	assert.Equal(t, requests[1], requests[0])
}

func TestHandler_Execute_CoordinatesWinOverLocation(t *testing.T) {
	upstream := placestest.New(t)
	handler := createTestHandler(t, upstream)

	output, err := handler.Execute(context.Background(), &Input{Lat: "10", Lon: "20", Location: "Atlantis"})

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Empty(t, output)
	assert.Equal(t, 0, upstream.Calls("geocode"))
}

func TestHandler_Execute_PartialCoordinatesFallBackToLocation(t *testing.T) {
	upstream := placestest.New(t)
	upstream.SetGeocode("Paris", placestest.Geocoded("paris", "Paris, France", 48.8566, 2.3522))
	handler := createTestHandler(t, upstream)

	_, err := handler.Execute(context.Background(), &Input{Lat: "10", Location: "Paris"})

	require.NoError(t, err)
	requests := upstream.NearbyRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, 48.8566, requests[0].LocationRestriction.Circle.Center.Latitude)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		setup   func(s *placestest.Server)
		want    *apperrors.StandardError
		message string
	}{
		{
			name:    "nothing given",
			input:   Input{},
			want:    apperrors.ErrInvalidArgument,
			message: "Latitude and longitude are required (or provide location name)",
		},
		{
			name:    "blank location",
			input:   Input{Location: "   "},
			want:    apperrors.ErrInvalidArgument,
			message: "Latitude and longitude are required (or provide location name)",
		},
		{
			name:    "unparseable latitude",
			input:   Input{Lat: "north", Lon: "1"},
			want:    apperrors.ErrInvalidArgument,
			message: "Invalid latitude or longitude",
		},
		{
			name:    "latitude out of range",
			input:   Input{Lat: "91", Lon: "0"},
			want:    apperrors.ErrInvalidArgument,
			message: "Invalid latitude or longitude",
		},
		{
			name:    "longitude out of range",
			input:   Input{Lat: "0", Lon: "-180.5"},
			want:    apperrors.ErrInvalidArgument,
			message: "Invalid latitude or longitude",
		},
		{
			name:    "unknown location",
			input:   Input{Location: "Atlantis"},
			want:    apperrors.ErrNotFound,
			message: "Location not found",
		},
		{
			name:  "geocode failure",
			input: Input{Location: "Austin"},
			setup: func(s *placestest.Server) {
				s.Fail("geocode", http.StatusInternalServerError)
			},
			want:    apperrors.ErrUpstream,
			message: "geocode failed",
		},
		{
			name:  "nearby failure",
			input: Input{Lat: "1", Lon: "1"},
			setup: func(s *placestest.Server) {
				s.Fail("searchNearby", http.StatusTooManyRequests)
			},
			want:    apperrors.ErrUpstream,
			message: "searchNearby failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := placestest.New(t)
			if tt.setup != nil {
				tt.setup(upstream)
			}

			output, err := createTestHandler(t, upstream).Execute(context.Background(), &tt.input)

			assert.Nil(t, output)
			require.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want.Code, err)
			assert.Equal(t, tt.message, apperrors.AsStandardError(err).Message)
		})
	}
}

func TestParseCoordinates_Bounds(t *testing.T) {
	c, err := parseCoordinates("-90", "180")
	require.NoError(t, err)
	assert.Equal(t, coordinates{lat: -90, lon: 180}, c)

	_, err = parseCoordinates("NaN", "0")
	assert.Error(t, err)
}

// ==========================
// HTTP Tests
// ==========================

func TestHandler_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := placestest.New(t)
	upstream.SetNearby(placestest.Restaurant("p1", "Taco Town", 4.2, 1))

	r := gin.New()
	r.GET(Route, createTestHandler(t, upstream).Handle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, Route+"?lat=1.5&lon=2.5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "p1", body[0]["place_id"])
	assert.Equal(t, "Taco Town", body[0]["name"])
	assert.Equal(t, 4.2, body[0]["rating"])
	assert.Equal(t, "Taco Town Street, Springfield", body[0]["address"])
	assert.NotEmpty(t, body[0]["image_url"])
}

func TestHandler_Handle_StatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := placestest.New(t)

	r := gin.New()
	r.GET(Route, createTestHandler(t, upstream).Handle)

	tests := []struct {
		query  string
		status int
		body   string
	}{
		{"", http.StatusBadRequest, `{"error":"Latitude and longitude are required (or provide location name)"}`},
		{"lat=abc&lon=1", http.StatusBadRequest, `{"error":"Invalid latitude or longitude"}`},
		{"location=Atlantis", http.StatusNotFound, `{"error":"Location not found"}`},
		{"lat=1&lon=1", http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, Route+"?"+tt.query, nil))
		assert.Equal(t, tt.status, w.Code, tt.query)
		assert.JSONEq(t, tt.body, w.Body.String(), tt.query)
	}
}

var _ PlacesClient = (*places.Client)(nil)
