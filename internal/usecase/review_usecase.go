package usecase

import (
	"context"
	"strconv"
	"strings"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

const defaultTopRatedLimit = 6

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

// reviewFieldNames maps the JSON field names accepted in partial updates to
// their stored counterparts. Keys outside this table are dropped, which
// also shields id and createdAt from client writes.
var reviewFieldNames = map[string]string{
	"game_title":  "gameTitle",
	"game_cover":  "gameCover",
	"description": "description",
	"rating":      "rating",
	"year":        "year",
	"genre":       "genre",
	"user_email":  "userEmail",
	"user_name":   "userName",
	"user_photo":  "userPhoto",
}

// integerReviewFields are stored as integers; JSON numbers arrive as
// float64 and are converted so the stored type stays consistent.
var integerReviewFields = map[string]bool{
	"rating": true,
	"year":   true,
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx)
}

func (uc *ReviewUseCase) ListTopRatedReviews(ctx context.Context, limit int) ([]*entity.Review, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}
	return uc.reviewRepo.ListTopRated(ctx, limit)
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *ReviewUseCase) ListReviewsByUser(ctx context.Context, email string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByUserEmail(ctx, email)
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) UpdateReview(ctx context.Context, id string, body map[string]interface{}) (*entity.UpdateResult, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}

	fields := translateReviewFields(body)
	if len(fields) == 0 {
		return nil, errors.BadRequest("No updatable fields in request body", nil)
	}

	return uc.reviewRepo.Update(ctx, id, fields)
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}
	return uc.reviewRepo.Delete(ctx, id)
}

type SearchReviewsInput struct {
	Query     string
	Genre     string
	MinRating string
}

func (uc *ReviewUseCase) SearchReviews(ctx context.Context, input SearchReviewsInput) ([]*entity.Review, error) {
	filter := repository.ReviewSearchFilter{Genre: input.Genre}

	if input.MinRating != "" {
		minRating, err := strconv.ParseFloat(input.MinRating, 64)
		if err != nil {
			return nil, errors.BadRequest("minRating must be a number", err)
		}
		filter.MinRating = &minRating
	}

	reviews, err := uc.reviewRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return filterReviewsByTitle(reviews, input.Query), nil
}

func (uc *ReviewUseCase) ListGenres(ctx context.Context) ([]string, error) {
	return uc.reviewRepo.ListGenres(ctx)
}

// filterReviewsByTitle applies the case-insensitive substring match that
// the store cannot express as a query.
func filterReviewsByTitle(reviews []*entity.Review, query string) []*entity.Review {
	if query == "" {
		return reviews
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Review, 0)
	for _, review := range reviews {
		if strings.Contains(strings.ToLower(review.GameTitle), needle) {
			matched = append(matched, review)
		}
	}

	return matched
}

func translateReviewFields(body map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{})
	for key, value := range body {
		storedName, ok := reviewFieldNames[key]
		if !ok {
			continue
		}
		if integerReviewFields[key] {
			if number, ok := value.(float64); ok {
				value = int(number)
			}
		}
		fields[storedName] = value
	}
	return fields
}

// validateDocID rejects identifiers the store cannot address, so a
// malformed id surfaces as a client error instead of a failed store call.
func validateDocID(id string) error {
	if id == "" || strings.Contains(id, "/") {
		return errors.BadRequest("Invalid document id", nil)
	}
	return nil
}
