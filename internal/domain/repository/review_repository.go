package repository

import (
	"context"

	"chillgamer/internal/domain/entity"
)

// ReviewSearchFilter holds the store-side search constraints. The free-text
// title match is applied by the use case after fetching, since the store
// only supports field equality and range filters.
type ReviewSearchFilter struct {
	Genre     string
	MinRating *float64
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	ListTopRated(ctx context.Context, limit int) ([]*entity.Review, error)
	ListByUserEmail(ctx context.Context, email string) ([]*entity.Review, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
	Search(ctx context.Context, filter ReviewSearchFilter) ([]*entity.Review, error)
	ListGenres(ctx context.Context) ([]string, error)
}
