package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/usecase"
	"chillgamer/pkg/errors"
	"chillgamer/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// The create payload is stored as submitted: absent fields stay absent,
// and no required-field policy is enforced on reviews.
type createReviewRequest struct {
	GameTitle   string `json:"game_title"`
	GameCover   string `json:"game_cover"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
	UserPhoto   string `json:"user_photo"`
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListTopRatedReviews(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return response.Error(c, errors.BadRequest("limit must be a positive integer", err))
		}
		limit = parsed
	}

	reviews, err := h.reviewUseCase.ListTopRatedReviews(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.reviewUseCase.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) ListReviewsByUser(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviewsByUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), &entity.Review{
		GameTitle:   req.GameTitle,
		GameCover:   req.GameCover,
		Description: req.Description,
		Rating:      req.Rating,
		Year:        req.Year,
		Genre:       req.Genre,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		UserPhoto:   req.UserPhoto,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.reviewUseCase.UpdateReview(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	result, err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ReviewHandler) SearchReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.SearchReviews(c.Request().Context(), usecase.SearchReviewsInput{
		Query:     c.QueryParam("q"),
		Genre:     c.QueryParam("genre"),
		MinRating: c.QueryParam("minRating"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListGenres(c echo.Context) error {
	genres, err := h.reviewUseCase.ListGenres(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, genres)
}
