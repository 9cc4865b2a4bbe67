package usecase

import (
	"context"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/logger"
)

type WatchlistUseCase struct {
	watchlistRepo repository.WatchlistRepository
}

func NewWatchlistUseCase(watchlistRepo repository.WatchlistRepository) *WatchlistUseCase {
	return &WatchlistUseCase{
		watchlistRepo: watchlistRepo,
	}
}

type AddToWatchlistInput struct {
	UserEmail string
	GameTitle string
}

func (uc *WatchlistUseCase) AddToWatchlist(ctx context.Context, input AddToWatchlistInput) (*entity.WatchlistEntry, error) {
	entry := &entity.WatchlistEntry{
		UserEmail: input.UserEmail,
		GameTitle: input.GameTitle,
	}

	if err := uc.watchlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info("Added %q to watchlist for %s", input.GameTitle, input.UserEmail)
	return entry, nil
}

func (uc *WatchlistUseCase) ListWatchlist(ctx context.Context, email string) ([]*entity.WatchlistEntry, error) {
	return uc.watchlistRepo.ListByUserEmail(ctx, email)
}

func (uc *WatchlistUseCase) RemoveFromWatchlist(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}
	return uc.watchlistRepo.Delete(ctx, id)
}
