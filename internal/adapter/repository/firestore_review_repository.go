package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return mapStoreError("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection(reviewsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Review", err)
		}
		return nil, mapStoreError("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	iter := r.client.Collection(reviewsCollection).Documents(ctx)
	return collectReviews(iter)
}

func (r *firestoreReviewRepository) ListTopRated(ctx context.Context, limit int) ([]*entity.Review, error) {
	// Secondary order on document id keeps the result deterministic when
	// ratings tie.
	query := r.client.Collection(reviewsCollection).
		OrderBy("rating", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit)

	return collectReviews(query.Documents(ctx))
}

func (r *firestoreReviewRepository) ListByUserEmail(ctx context.Context, email string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Where("userEmail", "==", email)
	return collectReviews(query.Documents(ctx))
}

func (r *firestoreReviewRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.UpdateResult, error) {
	docRef := r.client.Collection(reviewsCollection).Doc(id)

	// Updating a missing id is not an error: report zero matched documents,
	// mirroring a bulk-update summary.
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return &entity.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
		}
		return nil, mapStoreError("Failed to load review for update", err)
	}

	fields["updatedAt"] = time.Now()

	if _, err := docRef.Set(ctx, fields, firestore.MergeAll); err != nil {
		return nil, mapStoreError("Failed to update review", err)
	}

	return &entity.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	docRef := r.client.Collection(reviewsCollection).Doc(id)

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return &entity.DeleteResult{DeletedCount: 0}, nil
		}
		return nil, mapStoreError("Failed to load review for delete", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return nil, mapStoreError("Failed to delete review", err)
	}

	return &entity.DeleteResult{DeletedCount: 1}, nil
}

func (r *firestoreReviewRepository) Search(ctx context.Context, filter repository.ReviewSearchFilter) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Query

	if filter.Genre != "" {
		query = query.Where("genre", "==", filter.Genre)
	}
	if filter.MinRating != nil {
		query = query.Where("rating", ">=", *filter.MinRating)
	}

	return collectReviews(query.Documents(ctx))
}

func (r *firestoreReviewRepository) ListGenres(ctx context.Context) ([]string, error) {
	reviews, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, review := range reviews {
		if review.Genre == "" || seen[review.Genre] {
			continue
		}
		seen[review.Genre] = true
		genres = append(genres, review.Genre)
	}

	return genres, nil
}

func collectReviews(iter *firestore.DocumentIterator) ([]*entity.Review, error) {
	defer iter.Stop()

	reviews := make([]*entity.Review, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
