package repository

import (
	"context"

	"chillgamer/internal/domain/entity"
)

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no profile exists for the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Save writes the profile addressed by its email, replacing any
	// existing document for that email.
	Save(ctx context.Context, user *entity.User) error
}
