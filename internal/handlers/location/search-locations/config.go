// internal/handlers/location/search-locations/config.go
package searchlocations

import "time"

type Config struct {
	Timeout time.Duration
	// Limit caps the number of suggestions returned.
	Limit int
	// AllowedTypes are the place types that count as a location.
	AllowedTypes []string
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Limit:   5,
		AllowedTypes: []string{
			"locality",
			"administrative_area_level_1",
			"administrative_area_level_2",
			"administrative_area_level_3",
			"country",
		},
	}
}
