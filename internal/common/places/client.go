package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"restaurant-finder/internal/common/config"
	httpclient "restaurant-finder/internal/common/http"
)

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("places API returned status %d", e.StatusCode)
}

// TransportError is a call that never got an answer from the upstream API.
// Its message is safe to show to API callers; Detail is for logs.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return "Failed to reach places API"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Detail returns the underlying error text, with credentials already redacted.
func (e *TransportError) Detail() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Client talks to the Google Places (New) API and the Maps web services.
type Client struct {
	apiKey        string
	placesBaseURL string
	mapsBaseURL   string
	http          *httpclient.Client
}

func NewClient(cfg config.PlacesConfig) *Client {
	return &Client{
		apiKey:        cfg.APIKey,
		placesBaseURL: cfg.PlacesBaseURL,
		mapsBaseURL:   cfg.MapsBaseURL,
		http:          httpclient.NewClient(config.GetDuration(cfg.Timeout)),
	}
}

// Geocode resolves a free-text address. Callers inspect the body status.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var out GeocodeResponse
	if err := c.getMaps(ctx, "geocode", "/geocode/json", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TextSearch runs a free-text place search. Callers inspect the body status.
func (c *Client) TextSearch(ctx context.Context, query string) (*TextSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	var out TextSearchResponse
	if err := c.getMaps(ctx, "textSearch", "/place/textsearch/json", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchNearby calls places:searchNearby with the given field mask.
func (c *Client) SearchNearby(ctx context.Context, body *NearbyRequest, fieldMask string) (*NearbyResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nearby request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.placesBaseURL+"/places:searchNearby", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setPlacesHeaders(req, fieldMask)

	var out NearbyResponse
	if err := c.http.DoJSON(ctx, "searchNearby", req, &out); err != nil {
		return nil, translate("searchNearby", err)
	}
	return &out, nil
}

// GetPlace fetches a single place by id with the given field mask.
func (c *Client) GetPlace(ctx context.Context, placeID, fieldMask string) (*Place, error) {
	endpoint := fmt.Sprintf("%s/places/%s", c.placesBaseURL, url.PathEscape(placeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setPlacesHeaders(req, fieldMask)

	var out Place
	if err := c.http.DoJSON(ctx, "placeDetails", req, &out); err != nil {
		return nil, translate("placeDetails", err)
	}
	return &out, nil
}

// PhotoURL builds the media URL serving photoName scaled to fit maxPx square.
func (c *Client) PhotoURL(photoName string, maxPx int) string {
	if photoName == "" {
		return ""
	}
	params := url.Values{}
	params.Set("maxHeightPx", strconv.Itoa(maxPx))
	params.Set("maxWidthPx", strconv.Itoa(maxPx))
	params.Set("key", c.apiKey)
	return fmt.Sprintf("%s/%s/media?%s", c.placesBaseURL, photoName, params.Encode())
}

func (c *Client) getMaps(ctx context.Context, operation, path string, params url.Values, out interface{}) error {
	endpoint := c.mapsBaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if err := c.http.DoJSON(ctx, operation, req, out); err != nil {
		return translate(operation, err)
	}
	return nil
}

func (c *Client) setPlacesHeaders(req *http.Request, fieldMask string) {
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
}

// translate turns a status error into an APIError carrying the upstream
// message and anything else into a TransportError.
func translate(operation string, err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return &TransportError{Operation: operation, Err: err}
	}

	apiErr := &APIError{StatusCode: statusErr.StatusCode}
	var body errorResponse
	if json.Unmarshal(statusErr.Body, &body) == nil {
		apiErr.Status = body.Error.Status
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
