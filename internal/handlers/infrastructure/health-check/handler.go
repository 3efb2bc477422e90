// internal/handlers/infrastructure/health-check/handler.go
package healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Route = "/api/health"

type Handler struct {
	config *Config
}

func NewHandler(config *Config) *Handler {
	return &Handler{config: config}
}

func (h *Handler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, h.Execute())
}

func (h *Handler) Execute() *Output {
	return &Output{
		Status:  StatusHealthy,
		Message: h.config.Message,
	}
}
