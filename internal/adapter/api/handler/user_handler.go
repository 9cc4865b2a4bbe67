package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"chillgamer/internal/usecase"
	"chillgamer/pkg/errors"
	"chillgamer/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type upsertUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Name     string     `json:"name"`
	PhotoURL string     `json:"photo_url"`
	JoinDate *time.Time `json:"join_date"`
	Role     string     `json:"role"`
}

// GetUser responds 200 with a null body when the profile does not exist;
// a missing profile is an expected state for first-time visitors, not an
// error.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	if user == nil {
		return response.Success(c, nil)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpsertUser(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpsertUser(c.Request().Context(), usecase.UpsertUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		JoinDate: req.JoinDate,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
