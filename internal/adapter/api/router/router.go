package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupReviewRouter(e)
	SetupGameRouter(e)
	SetupUserRouter(e)
	SetupWatchlistRouter(e)
	SetupHealthRouter(e)
}
