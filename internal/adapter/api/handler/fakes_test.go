package handler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

// Minimal in-memory repositories so handler tests can run the real use
// cases without a store.

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(r.reviews)+1)
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) List(ctx context.Context) ([]*entity.Review, error) {
	return append([]*entity.Review{}, r.reviews...), nil
}

func (r *fakeReviewRepo) ListTopRated(ctx context.Context, limit int) ([]*entity.Review, error) {
	sorted := append([]*entity.Review{}, r.reviews...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeReviewRepo) ListByUserEmail(ctx context.Context, email string) ([]*entity.Review, error) {
	matched := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if review.UserEmail == email {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.UpdateResult, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			review.UpdatedAt = time.Now()
			return &entity.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &entity.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return &entity.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &entity.DeleteResult{DeletedCount: 0}, nil
}

func (r *fakeReviewRepo) Search(ctx context.Context, filter repository.ReviewSearchFilter) ([]*entity.Review, error) {
	matched := make([]*entity.Review, 0)
	for _, review := range r.reviews {
		if filter.Genre != "" && review.Genre != filter.Genre {
			continue
		}
		if filter.MinRating != nil && float64(review.Rating) < *filter.MinRating {
			continue
		}
		matched = append(matched, review)
	}
	return matched, nil
}

func (r *fakeReviewRepo) ListGenres(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	genres := make([]string, 0)
	for _, review := range r.reviews {
		if review.Genre == "" || seen[review.Genre] {
			continue
		}
		seen[review.Genre] = true
		genres = append(genres, review.Genre)
	}
	return genres, nil
}

type fakeWatchlistRepo struct {
	entries []*entity.WatchlistEntry
}

func (r *fakeWatchlistRepo) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	for _, existing := range r.entries {
		if existing.UserEmail == entry.UserEmail && existing.GameTitle == entry.GameTitle {
			return errors.Conflict("Game is already in the watchlist")
		}
	}
	entry.ID = fmt.Sprintf("%s_%s", entry.UserEmail, entry.GameTitle)
	entry.AddedAt = time.Now()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeWatchlistRepo) ListByUserEmail(ctx context.Context, email string) ([]*entity.WatchlistEntry, error) {
	matched := make([]*entity.WatchlistEntry, 0)
	for _, entry := range r.entries {
		if entry.UserEmail == email {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (r *fakeWatchlistRepo) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	for i, entry := range r.entries {
		if entry.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return &entity.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &entity.DeleteResult{DeletedCount: 0}, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	user.ID = user.Email
	copied := *user
	r.users[user.Email] = &copied
	return nil
}
