// internal/handlers/location/geocode/config.go
package geocode

import "time"

type Config struct {
	// Timeout bounds the single upstream geocoding call.
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
