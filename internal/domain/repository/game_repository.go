package repository

import (
	"context"

	"chillgamer/internal/domain/entity"
)

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
