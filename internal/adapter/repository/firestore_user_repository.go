package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
	"chillgamer/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapStoreError("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Save(ctx context.Context, user *entity.User) error {
	// Profiles are addressed by email, so concurrent upserts for the same
	// email land on the same document and never duplicate it.
	user.ID = user.Email

	_, err := r.client.Collection(usersCollection).Doc(user.Email).Set(ctx, user)
	if err != nil {
		return mapStoreError("Failed to save user", err)
	}

	return nil
}
