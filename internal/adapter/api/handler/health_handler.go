package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chillgamer/internal/usecase"
)

type HealthHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewHealthHandler(statsUseCase *usecase.StatsUseCase) *HealthHandler {
	return &HealthHandler{
		statsUseCase: statsUseCase,
	}
}

func (h *HealthHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "chill-gamer",
		"status":  "Server is running",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// CheckHealth reports store liveness through collection counts. A partial
// count failure degrades to a 500 carrying whatever counts succeeded.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	report := h.statsUseCase.GetStats(c.Request().Context())

	if !report.Healthy {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Store check failed",
			"error":   "one or more collection counts failed",
			"stats":   report,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Server is running",
		"stats":   report,
	})
}
