package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"chillgamer/pkg/errors"
)

func TestAddToWatchlistRejectsDuplicatePair(t *testing.T) {
	repo := newFakeWatchlistRepo()
	uc := NewWatchlistUseCase(repo)

	input := AddToWatchlistInput{UserEmail: "a@b.com", GameTitle: "Elden Ring"}

	entry, err := uc.AddToWatchlist(context.Background(), input)
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.AddedAt.IsZero())

	_, err = uc.AddToWatchlist(context.Background(), input)
	assert.True(t, errors.Is(err, "CONFLICT"))

	entries, err := uc.ListWatchlist(context.Background(), "a@b.com")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddToWatchlistAllowsSameGameForDifferentUsers(t *testing.T) {
	repo := newFakeWatchlistRepo()
	uc := NewWatchlistUseCase(repo)

	_, err := uc.AddToWatchlist(context.Background(), AddToWatchlistInput{UserEmail: "a@b.com", GameTitle: "Hades"})
	assert.NoError(t, err)

	_, err = uc.AddToWatchlist(context.Background(), AddToWatchlistInput{UserEmail: "c@d.com", GameTitle: "Hades"})
	assert.NoError(t, err)
}

func TestListWatchlistFiltersByEmail(t *testing.T) {
	repo := newFakeWatchlistRepo()
	uc := NewWatchlistUseCase(repo)

	_, err := uc.AddToWatchlist(context.Background(), AddToWatchlistInput{UserEmail: "a@b.com", GameTitle: "Hades"})
	assert.NoError(t, err)
	_, err = uc.AddToWatchlist(context.Background(), AddToWatchlistInput{UserEmail: "c@d.com", GameTitle: "Doom"})
	assert.NoError(t, err)

	entries, err := uc.ListWatchlist(context.Background(), "a@b.com")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Hades", entries[0].GameTitle)
}

func TestRemoveFromWatchlistMissingIDIsNotAnError(t *testing.T) {
	uc := NewWatchlistUseCase(newFakeWatchlistRepo())

	result, err := uc.RemoveFromWatchlist(context.Background(), "does-not-exist")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, result.DeletedCount)
}

func TestRemoveFromWatchlistRejectsMalformedID(t *testing.T) {
	uc := NewWatchlistUseCase(newFakeWatchlistRepo())

	_, err := uc.RemoveFromWatchlist(context.Background(), "bad/id")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
