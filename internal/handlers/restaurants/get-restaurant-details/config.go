// internal/handlers/restaurants/get-restaurant-details/config.go
package getrestaurantdetails

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
