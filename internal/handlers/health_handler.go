package handlers

import (
	"net/http"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db               *gorm.DB
	remoteConfigured func() bool
}

// NewHealthCheckHandler creates a new health check handler. remoteConfigured
// may be nil.
func NewHealthCheckHandler(db *gorm.DB, remoteConfigured func() bool) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, remoteConfigured: remoteConfigured}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	checks := map[string]string{"database": "ok"}
	if h.remoteConfigured != nil {
		if h.remoteConfigured() {
			checks["firebase"] = "configured"
		} else {
			checks["firebase"] = "not configured"
		}
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UnixMilli(),
		Checks:    checks,
	})
}
