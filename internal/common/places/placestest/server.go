// Package placestest provides an in-process fake of the places upstream for tests.
package placestest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/places"
)

const APIKey = "test-api-key"

// Server answers geocode, text search, nearby search and place details calls
// from canned data. Unknown addresses/queries yield ZERO_RESULTS and unknown
// place ids a 404.
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	geocodes       map[string]places.GeocodeResponse
	textSearches   map[string]places.TextSearchResponse
	nearby         places.NearbyResponse
	places         map[string]places.Place
	failures       map[string]int
	nearbyRequests []places.NearbyRequest
	calls          map[string]int
}

func New(t testing.TB) *Server {
	s := &Server{
		geocodes:     make(map[string]places.GeocodeResponse),
		textSearches: make(map[string]places.TextSearchResponse),
		places:       make(map[string]places.Place),
		failures:     make(map[string]int),
		calls:        make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Config returns a places config pointing at this server with production defaults.
func (s *Server) Config() config.PlacesConfig {
	return config.PlacesConfig{
		APIKey:        APIKey,
		PlacesBaseURL: s.URL + "/v1",
		MapsBaseURL:   s.URL + "/maps/api",
		Timeout:       2000,
		SearchRadius:  5000,
		MaxResults:    20,
		MinRating:     4.0,
		PhotoMaxPx:    800,
		LocationLimit: 5,
	}
}

func (s *Server) Client() *places.Client {
	return places.NewClient(s.Config())
}

func (s *Server) SetGeocode(address string, resp places.GeocodeResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geocodes[address] = resp
}

func (s *Server) SetTextSearch(query string, resp places.TextSearchResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textSearches[query] = resp
}

func (s *Server) SetNearby(result ...places.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = places.NearbyResponse{Places: result}
}

func (s *Server) AddPlace(p places.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[p.ID] = p
}

// Fail makes every call of operation ("geocode", "textSearch", "searchNearby",
// "placeDetails") answer with status.
func (s *Server) Fail(operation string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[operation] = status
}

func (s *Server) NearbyRequests() []places.NearbyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]places.NearbyRequest(nil), s.nearbyRequests...)
}

func (s *Server) Calls(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[operation]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == "/maps/api/geocode/json":
		s.handleGeocode(w, r)
	case r.Method == http.MethodGet && path == "/maps/api/place/textsearch/json":
		s.handleTextSearch(w, r)
	case r.Method == http.MethodPost && path == "/v1/places:searchNearby":
		s.handleNearby(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(path, "/v1/places/"):
		s.handlePlace(w, r, strings.TrimPrefix(path, "/v1/places/"))
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+path)
	}
}

func (s *Server) begin(w http.ResponseWriter, operation string) bool {
	s.mu.Lock()
	s.calls[operation]++
	status, failing := s.failures[operation]
	s.mu.Unlock()

	if failing {
		writeError(w, status, "INTERNAL", fmt.Sprintf("%s failed", operation))
		return false
	}
	return true
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, "geocode") {
		return
	}
	if r.URL.Query().Get("key") != APIKey {
		writeJSON(w, places.GeocodeResponse{Status: places.StatusRequestDenied, ErrorMessage: "The provided API key is invalid."})
		return
	}

	s.mu.Lock()
	resp, ok := s.geocodes[r.URL.Query().Get("address")]
	s.mu.Unlock()
	if !ok {
		resp = places.GeocodeResponse{Status: places.StatusZeroResults, Results: []places.GeocodeResult{}}
	}
	writeJSON(w, resp)
}

func (s *Server) handleTextSearch(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, "textSearch") {
		return
	}
	if r.URL.Query().Get("key") != APIKey {
		writeJSON(w, places.TextSearchResponse{Status: places.StatusRequestDenied, ErrorMessage: "The provided API key is invalid."})
		return
	}

	s.mu.Lock()
	resp, ok := s.textSearches[r.URL.Query().Get("query")]
	s.mu.Unlock()
	if !ok {
		resp = places.TextSearchResponse{Status: places.StatusZeroResults, Results: []places.TextSearchResult{}}
	}
	writeJSON(w, resp)
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	if !s.begin(w, "searchNearby") {
		return
	}
	if !checkPlacesHeaders(w, r) {
		return
	}

	var req places.NearbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON payload")
		return
	}

	s.mu.Lock()
	s.nearbyRequests = append(s.nearbyRequests, req)
	resp := s.nearby
	s.mu.Unlock()

	if req.MaxResultCount > 0 && len(resp.Places) > req.MaxResultCount {
		resp.Places = resp.Places[:req.MaxResultCount]
	}
	writeJSON(w, resp)
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request, id string) {
	if !s.begin(w, "placeDetails") {
		return
	}
	if !checkPlacesHeaders(w, r) {
		return
	}

	s.mu.Lock()
	p, ok := s.places[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Place '%s' not found.", id))
		return
	}
	writeJSON(w, p)
}

func checkPlacesHeaders(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("X-Goog-Api-Key") != APIKey {
		writeError(w, http.StatusForbidden, "PERMISSION_DENIED", "API key not valid. Please pass a valid API key.")
		return false
	}
	if r.Header.Get("X-Goog-FieldMask") == "" {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "FieldMask is a required parameter.")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    status,
			"message": message,
			"status":  code,
		},
	})
}

// Restaurant builds a place as returned by nearby search. photos is the number
// of photo references attached.
func Restaurant(id, name string, rating float64, photos int) places.Place {
	p := places.Place{
		ID:               id,
		DisplayName:      &places.LocalizedText{Text: name, LanguageCode: "en"},
		Rating:           Float(rating),
		FormattedAddress: fmt.Sprintf("%s Street, Springfield", name),
	}
	for i := 0; i < photos; i++ {
		p.Photos = append(p.Photos, places.Photo{
			Name:     fmt.Sprintf("places/%s/photos/ref%d", id, i),
			WidthPx:  1600,
			HeightPx: 1200,
		})
	}
	return p
}

// Geocoded builds a successful geocode response with a single result.
func Geocoded(placeID, address string, lat, lng float64) places.GeocodeResponse {
	return places.GeocodeResponse{
		Status: places.StatusOK,
		Results: []places.GeocodeResult{{
			FormattedAddress: address,
			Geometry:         places.Geometry{Location: places.LatLng{Lat: lat, Lng: lng}},
			PlaceID:          placeID,
			Types:            []string{"locality", "political"},
		}},
	}
}

func Float(v float64) *float64 { return &v }

func String(v string) *string { return &v }
