package places_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/places"
	"restaurant-finder/internal/common/places/placestest"
)

func TestClient_Geocode(t *testing.T) {
	upstream := placestest.New(t)
	upstream.SetGeocode("Paris", placestest.Geocoded("paris-id", "Paris, France", 48.8566, 2.3522))
	client := upstream.Client()

	resp, err := client.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, places.StatusOK, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "paris-id", resp.Results[0].PlaceID)
	assert.Equal(t, 48.8566, resp.Results[0].Geometry.Location.Lat)

	resp, err = client.Geocode(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, places.StatusZeroResults, resp.Status)
}

func TestClient_TextSearch(t *testing.T) {
	upstream := placestest.New(t)
	upstream.SetTextSearch("spring", places.TextSearchResponse{
		Status: places.StatusOK,
		Results: []places.TextSearchResult{
			{PlaceID: "s1", Name: "Springfield", FormattedAddress: "Springfield, IL, USA", Types: []string{"locality"}},
		},
	})

	resp, err := upstream.Client().TextSearch(context.Background(), "spring")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Springfield", resp.Results[0].Name)
}

func TestClient_SearchNearby(t *testing.T) {
	upstream := placestest.New(t)
	upstream.SetNearby(placestest.Restaurant("r1", "Pho House", 4.5, 1))

	resp, err := upstream.Client().SearchNearby(context.Background(), &places.NearbyRequest{
		IncludedTypes:  []string{"restaurant"},
		MaxResultCount: 20,
		LocationRestriction: places.LocationRestriction{Circle: places.Circle{
			Center: places.Center{Latitude: 1, Longitude: 2},
			Radius: 5000,
		}},
	}, places.NearbyFieldMask)
	require.NoError(t, err)
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "Pho House", resp.Places[0].Name())

	reqs := upstream.NearbyRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"restaurant"}, reqs[0].IncludedTypes)
	assert.Equal(t, 5000.0, reqs[0].LocationRestriction.Circle.Radius)
}

func TestClient_GetPlace_NotFound(t *testing.T) {
	upstream := placestest.New(t)

	_, err := upstream.Client().GetPlace(context.Background(), "missing", places.DetailsFieldMask)

	var apiErr *places.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Status)
	assert.Equal(t, "Place 'missing' not found.", apiErr.Error())
}

func TestClient_GetPlace_BadKey(t *testing.T) {
	upstream := placestest.New(t)
	upstream.AddPlace(placestest.Restaurant("r1", "Ramen Lab", 4.2, 1))

	cfg := upstream.Config()
	cfg.APIKey = "wrong"
	_, err := places.NewClient(cfg).GetPlace(context.Background(), "r1", places.DetailsFieldMask)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestClient_PhotoURL(t *testing.T) {
	upstream := placestest.New(t)
	client := upstream.Client()

	got := client.PhotoURL("places/r1/photos/ref0", 800)
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/v1/places/r1/photos/ref0/media", u.Path)
	assert.Equal(t, "800", u.Query().Get("maxHeightPx"))
	assert.Equal(t, "800", u.Query().Get("maxWidthPx"))
	assert.Equal(t, placestest.APIKey, u.Query().Get("key"))

	assert.Empty(t, client.PhotoURL("", 800))
}

func TestAPIError_FallbackMessage(t *testing.T) {
	err := &places.APIError{StatusCode: 502}
	assert.Equal(t, "places API returned status 502", err.Error())
}

func unreachableClient(t *testing.T) *places.Client {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	return places.NewClient(config.PlacesConfig{
		APIKey:        placestest.APIKey,
		PlacesBaseURL: baseURL + "/v1",
		MapsBaseURL:   baseURL + "/maps/api",
		Timeout:       2000,
	})
}

func TestClient_TransportErrorsHideAPIKey(t *testing.T) {
	client := unreachableClient(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() error
		keyInQuery bool
	}{
		{
			name: "geocode",
			call: func() error {
				_, err := client.Geocode(ctx, "Paris")
				return err
			},
			keyInQuery: true,
		},
		{
			name: "textSearch",
			call: func() error {
				_, err := client.TextSearch(ctx, "Paris")
				return err
			},
			keyInQuery: true,
		},
		{
			name: "searchNearby",
			call: func() error {
				_, err := client.SearchNearby(ctx, &places.NearbyRequest{MaxResultCount: 1}, places.NearbyFieldMask)
				return err
			},
		},
		{
			name: "placeDetails",
			call: func() error {
				_, err := client.GetPlace(ctx, "r1", places.DetailsFieldMask)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var transportErr *places.TransportError
			require.True(t, errors.As(err, &transportErr), "got %v", err)
			assert.Equal(t, tt.name, transportErr.Operation)
			assert.Equal(t, "Failed to reach places API", err.Error())

			detail := transportErr.Detail()
			assert.NotContains(t, detail, placestest.APIKey)
			assert.NotContains(t, transportErr.Err.Error(), placestest.APIKey)
			if tt.keyInQuery {
				assert.True(t, strings.Contains(detail, "key=REDACTED"), detail)
			}
		})
	}
}
