package repository

import (
	"context"

	"chillgamer/internal/domain/entity"
)

type WatchlistRepository interface {
	// Create inserts the entry and fails with a conflict when an entry for
	// the same (userEmail, gameTitle) pair already exists.
	Create(ctx context.Context, entry *entity.WatchlistEntry) error
	ListByUserEmail(ctx context.Context, email string) ([]*entity.WatchlistEntry, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
