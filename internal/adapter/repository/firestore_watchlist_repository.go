package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

type firestoreWatchlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWatchlistRepository(client *firestore.Client) repository.WatchlistRepository {
	return &firestoreWatchlistRepository{client: client}
}

// watchlistDocID derives the document id from the (userEmail, gameTitle)
// pair. Addressing entries this way makes the pair unique at the storage
// layer, so concurrent duplicate inserts cannot both succeed.
func watchlistDocID(userEmail, gameTitle string) string {
	id := fmt.Sprintf("%s_%s", userEmail, gameTitle)
	return strings.ReplaceAll(id, "/", "_")
}

func (r *firestoreWatchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	entry.ID = watchlistDocID(entry.UserEmail, entry.GameTitle)
	entry.AddedAt = time.Now()

	// Create, not Set: the store rejects the write if the document already
	// exists, which is the conflict signal.
	_, err := r.client.Collection(watchlistCollection).Doc(entry.ID).Create(ctx, entry)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Game is already in the watchlist")
		}
		return mapStoreError("Failed to add to watchlist", err)
	}

	return nil
}

func (r *firestoreWatchlistRepository) ListByUserEmail(ctx context.Context, email string) ([]*entity.WatchlistEntry, error) {
	query := r.client.Collection(watchlistCollection).Where("userEmail", "==", email)

	iter := query.Documents(ctx)
	defer iter.Stop()

	entries := make([]*entity.WatchlistEntry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError("Failed to iterate watchlist", err)
		}

		var entry entity.WatchlistEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse watchlist entry", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *firestoreWatchlistRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	docRef := r.client.Collection(watchlistCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return &entity.DeleteResult{DeletedCount: 0}, nil
		}
		return nil, mapStoreError("Failed to load watchlist entry for delete", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return nil, mapStoreError("Failed to remove from watchlist", err)
	}

	return &entity.DeleteResult{DeletedCount: 1}, nil
}
