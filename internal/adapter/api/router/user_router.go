package router

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/chill-gamer/users")
	users.GET("/:email", userHandler.GetUser)
	users.POST("", userHandler.UpsertUser)
}
