// internal/handlers/likes/like-restaurant/config.go
package likerestaurant

type Config struct {
	// MaxBodyBytes bounds the request body read before validation.
	MaxBodyBytes int64
}

func LoadConfig() *Config {
	return &Config{
		MaxBodyBytes: 64 << 10,
	}
}
