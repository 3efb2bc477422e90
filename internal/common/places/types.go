package places

// Statuses reported in the body of Maps web service responses.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
)

// Field masks for the Places API (New). The API rejects requests without one.
const (
	NearbyFieldMask      = "places.id,places.displayName,places.rating,places.formattedAddress,places.photos"
	DetailsFieldMask     = "id,displayName,rating,nationalPhoneNumber,websiteUri,editorialSummary"
	LikedPlacesFieldMask = "id,displayName,rating,formattedAddress,photos"
)

// --- Maps web service (geocoding, text search) ---

type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TextSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	Results      []TextSearchResult `json:"results"`
}

type TextSearchResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Types            []string `json:"types"`
}

// --- Places API (New) ---

type Place struct {
	ID                  string         `json:"id"`
	DisplayName         *LocalizedText `json:"displayName,omitempty"`
	Rating              *float64       `json:"rating,omitempty"`
	FormattedAddress    string         `json:"formattedAddress,omitempty"`
	NationalPhoneNumber *string        `json:"nationalPhoneNumber,omitempty"`
	WebsiteURI          *string        `json:"websiteUri,omitempty"`
	EditorialSummary    *LocalizedText `json:"editorialSummary,omitempty"`
	Photos              []Photo        `json:"photos,omitempty"`
}

// Name returns the display name text, or "" when the place has none.
func (p *Place) Name() string {
	if p.DisplayName == nil {
		return ""
	}
	return p.DisplayName.Text
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// Photo.Name is a resource name of the form places/{placeId}/photos/{ref}.
type Photo struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx,omitempty"`
	HeightPx int    `json:"heightPx,omitempty"`
}

type NearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction LocationRestriction `json:"locationRestriction"`
}

type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

type Circle struct {
	Center Center  `json:"center"`
	Radius float64 `json:"radius"`
}

type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type NearbyResponse struct {
	Places []Place `json:"places"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
