package handler

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/usecase"
	"chillgamer/pkg/errors"
	"chillgamer/pkg/response"
)

type WatchlistHandler struct {
	watchlistUseCase *usecase.WatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUseCase: watchlistUseCase,
	}
}

type addToWatchlistRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	GameTitle string `json:"game_title" validate:"required"`
}

func (h *WatchlistHandler) ListWatchlist(c echo.Context) error {
	entries, err := h.watchlistUseCase.ListWatchlist(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	var req addToWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.watchlistUseCase.AddToWatchlist(c.Request().Context(), usecase.AddToWatchlistInput{
		UserEmail: req.UserEmail,
		GameTitle: req.GameTitle,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entry)
}

func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	result, err := h.watchlistUseCase.RemoveFromWatchlist(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
