package handler

import (
	"chillgamer/internal/usecase"
)

var (
	reviewHandler    *ReviewHandler
	gameHandler      *GameHandler
	userHandler      *UserHandler
	watchlistHandler *WatchlistHandler
	healthHandler    *HealthHandler
)

func Setup(
	reviewUseCase *usecase.ReviewUseCase,
	gameUseCase *usecase.GameUseCase,
	userUseCase *usecase.UserUseCase,
	watchlistUseCase *usecase.WatchlistUseCase,
	statsUseCase *usecase.StatsUseCase,
) {
	reviewHandler = NewReviewHandler(reviewUseCase)
	gameHandler = NewGameHandler(gameUseCase)
	userHandler = NewUserHandler(userUseCase)
	watchlistHandler = NewWatchlistHandler(watchlistUseCase)
	healthHandler = NewHealthHandler(statsUseCase)
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetWatchlistHandler() *WatchlistHandler {
	return watchlistHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
