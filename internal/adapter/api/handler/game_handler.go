package handler

import (
	"github.com/labstack/echo/v4"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/usecase"
	"chillgamer/pkg/errors"
	"chillgamer/pkg/response"
)

type GameHandler struct {
	gameUseCase *usecase.GameUseCase
}

func NewGameHandler(gameUseCase *usecase.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

type createGameRequest struct {
	Title       string   `json:"title" validate:"required"`
	CoverImage  string   `json:"cover_image"`
	Genre       []string `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Developer   string   `json:"developer"`
	Platforms   []string `json:"platforms"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
}

func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.gameUseCase.ListGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *GameHandler) GetGame(c echo.Context) error {
	game, err := h.gameUseCase.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	game, err := h.gameUseCase.CreateGame(c.Request().Context(), &entity.Game{
		Title:       req.Title,
		CoverImage:  req.CoverImage,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Developer:   req.Developer,
		Platforms:   req.Platforms,
		Description: req.Description,
		Rating:      req.Rating,
		Price:       req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *GameHandler) DeleteGame(c echo.Context) error {
	result, err := h.gameUseCase.DeleteGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
