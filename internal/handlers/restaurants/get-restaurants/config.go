// internal/handlers/restaurants/get-restaurants/config.go
package getrestaurants

import "time"

type Config struct {
	Timeout time.Duration
	// Radius of the nearby search circle in meters.
	Radius     float64
	MaxResults int
	MinRating  float64
	PhotoMaxPx int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		Radius:     5000,
		MaxResults: 20,
		MinRating:  4.0,
		PhotoMaxPx: 800,
	}
}
