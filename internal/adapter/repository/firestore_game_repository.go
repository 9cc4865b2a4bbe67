package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	if game.ID == "" {
		doc := r.client.Collection(gamesCollection).NewDoc()
		game.ID = doc.ID
	}

	now := time.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	_, err := r.client.Collection(gamesCollection).Doc(game.ID).Set(ctx, game)
	if err != nil {
		return mapStoreError("Failed to create game", err)
	}

	return nil
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := r.client.Collection(gamesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Game", err)
		}
		return nil, mapStoreError("Failed to get game", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

func (r *firestoreGameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	iter := r.client.Collection(gamesCollection).Documents(ctx)
	defer iter.Stop()

	games := make([]*entity.Game, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	return games, nil
}

func (r *firestoreGameRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	docRef := r.client.Collection(gamesCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return &entity.DeleteResult{DeletedCount: 0}, nil
		}
		return nil, mapStoreError("Failed to load game for delete", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return nil, mapStoreError("Failed to delete game", err)
	}

	return &entity.DeleteResult{DeletedCount: 1}, nil
}
