// internal/handlers/likes/list-liked/config.go
package listliked

import "time"

type Config struct {
	// Timeout bounds each per-id details lookup.
	Timeout time.Duration
	// Budget bounds the whole listing. Ids not reached in time are skipped.
	// Zero means no bound beyond the request context.
	Budget     time.Duration
	PhotoMaxPx int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		Budget:     50 * time.Second,
		PhotoMaxPx: 800,
	}
}
