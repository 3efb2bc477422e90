// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Places  PlacesConfig  `mapstructure:"places"`
	Logging LoggingConfig `mapstructure:"logging"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int        `mapstructure:"port"`
	ReadTimeout     int        `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int        `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int        `mapstructure:"shutdown_timeout"` // milliseconds
	CORS            CORSConfig `mapstructure:"cors"`
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// --- Upstream API Config ---
type PlacesConfig struct {
	APIKey        string  `mapstructure:"api_key"`
	PlacesBaseURL string  `mapstructure:"places_base_url"`
	MapsBaseURL   string  `mapstructure:"maps_base_url"`
	Timeout       int     `mapstructure:"timeout"` // milliseconds
	SearchRadius  float64 `mapstructure:"search_radius"`
	MaxResults    int     `mapstructure:"max_results"`
	MinRating     float64 `mapstructure:"min_rating"`
	PhotoMaxPx    int     `mapstructure:"photo_max_px"`
	LocationLimit int     `mapstructure:"location_limit"`
}

// --- Ambient Config ---
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	ServiceName    string  `mapstructure:"service_name"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	SampleRatio    float64 `mapstructure:"sample_ratio"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
