package usecase

import (
	"context"
	"time"

	"chillgamer/internal/domain/entity"
	"chillgamer/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// GetUser returns nil without an error when no profile exists; the
// handler serves that as a 200 with a null body.
func (uc *UserUseCase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

type UpsertUserInput struct {
	Email    string
	Name     string
	PhotoURL string
	JoinDate *time.Time
	Role     string
}

// UpsertUser replaces the profile fields for the email, refreshing
// lastLogin on every call. joinDate is set once on first creation and
// preserved afterwards unless the caller resupplies it.
func (uc *UserUseCase) UpsertUser(ctx context.Context, input UpsertUserInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      input.Role,
		LastLogin: now,
	}

	switch {
	case input.JoinDate != nil:
		user.JoinDate = *input.JoinDate
	case existing != nil:
		user.JoinDate = existing.JoinDate
	default:
		user.JoinDate = now
	}

	if user.Role == "" {
		if existing != nil && existing.Role != "" {
			user.Role = existing.Role
		} else {
			user.Role = "user"
		}
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
