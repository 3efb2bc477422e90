// internal/handlers/infrastructure/health-check/config.go
package healthcheck

type Config struct {
	Message string
}

func LoadConfig() *Config {
	return &Config{
		Message: "Restaurant Finder API is running",
	}
}
