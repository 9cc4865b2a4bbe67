package usecase

import (
	"context"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
)

type GameUseCase struct {
	gameRepo repository.GameRepository
}

func NewGameUseCase(gameRepo repository.GameRepository) *GameUseCase {
	return &GameUseCase{
		gameRepo: gameRepo,
	}
}

func (uc *GameUseCase) ListGames(ctx context.Context) ([]*entity.Game, error) {
	return uc.gameRepo.List(ctx)
}

func (uc *GameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}
	return uc.gameRepo.GetByID(ctx, id)
}

func (uc *GameUseCase) CreateGame(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if err := uc.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (uc *GameUseCase) DeleteGame(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if err := validateDocID(id); err != nil {
		return nil, err
	}
	return uc.gameRepo.Delete(ctx, id)
}
