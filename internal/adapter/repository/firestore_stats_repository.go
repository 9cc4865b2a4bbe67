package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"chillgamer/internal/domain/repository"
)

type firestoreStatsRepository struct {
	client *firestore.Client
}

func NewFirestoreStatsRepository(client *firestore.Client) repository.StatsRepository {
	return &firestoreStatsRepository{client: client}
}

func (r *firestoreStatsRepository) Count(ctx context.Context, collection string) (int64, error) {
	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var count int64
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, mapStoreError("Failed to count "+collection, err)
		}
		count++
	}

	return count, nil
}
