package router

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/chill-gamer/reviews")
	reviews.GET("", reviewHandler.ListReviews)
	reviews.GET("/highest-rated", reviewHandler.ListTopRatedReviews)
	reviews.GET("/user/:email", reviewHandler.ListReviewsByUser)
	reviews.GET("/:id", reviewHandler.GetReview)
	reviews.POST("", reviewHandler.CreateReview)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)

	e.GET("/chill-gamer/search/reviews", reviewHandler.SearchReviews)
	e.GET("/chill-gamer/genres", reviewHandler.ListGenres)
}
