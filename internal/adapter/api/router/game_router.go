package router

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/adapter/api/handler"
)

func SetupGameRouter(e *echo.Echo) {
	gameHandler := handler.GetGameHandler()

	games := e.Group("/chill-gamer/games")
	games.GET("", gameHandler.ListGames)
	games.GET("/:id", gameHandler.GetGame)
	games.POST("", gameHandler.CreateGame)
	games.DELETE("/:id", gameHandler.DeleteGame)
}
