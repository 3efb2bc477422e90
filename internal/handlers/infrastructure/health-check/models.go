// internal/handlers/infrastructure/health-check/models.go
package healthcheck

import "restaurant-finder/internal/models"

const StatusHealthy = "healthy"

type Output = models.HealthStatus
