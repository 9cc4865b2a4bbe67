package router

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/adapter/api/handler"
)

func SetupWatchlistRouter(e *echo.Echo) {
	watchlistHandler := handler.GetWatchlistHandler()

	watchlist := e.Group("/chill-gamer/watchlist")
	watchlist.GET("/:email", watchlistHandler.ListWatchlist)
	watchlist.POST("", watchlistHandler.AddToWatchlist)
	watchlist.DELETE("/:id", watchlistHandler.RemoveFromWatchlist)
}
