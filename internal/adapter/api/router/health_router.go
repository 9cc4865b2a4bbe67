package router

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/adapter/api/handler"
	"chillgamer/internal/infrastructure/monitoring"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/", healthHandler.Banner)
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/metrics", monitoring.Handler())
}
