package usecases

import (
	"context"
	"fmt"

	"room-server/entities"
	"room-server/repositories"
	"room-server/serializers"
)

// PasswordHasher derives the stored password hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type UserUseCase struct {
	UserRepo repositories.UserRepository
	Hasher   PasswordHasher
}

func NewUserUseCase(userRepo repositories.UserRepository, hasher PasswordHasher) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
		Hasher:   hasher,
	}
}

// ListUsers retrieves all users
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return uc.UserRepo.GetAll(ctx)
}

// GetUser retrieves a user by ID; repositories.ErrNotFound if there is none.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, repositories.ErrNotFound
	}
	return uc.UserRepo.GetByID(ctx, id)
}

// CreateUser stores a new user built from a validated payload
func (uc *UserUseCase) CreateUser(ctx context.Context, in serializers.UserInput) (*entities.User, error) {
	user := &entities.User{}
	in.ApplyTo(user)
	if err := uc.setPassword(user, in.Password); err != nil {
		return nil, err
	}
	if err := uc.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser merges the supplied fields into existing and saves it. Fields
// the payload left out keep their stored values.
func (uc *UserUseCase) UpdateUser(ctx context.Context, existing *entities.User, in serializers.UserInput) (*entities.User, error) {
	in.ApplyTo(existing)
	if err := uc.setPassword(existing, in.Password); err != nil {
		return nil, err
	}
	if err := uc.UserRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteUser deletes a user
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrNotFound
	}
	return uc.UserRepo.Delete(ctx, id)
}

func (uc *UserUseCase) setPassword(user *entities.User, password *string) error {
	if password == nil {
		return nil
	}
	hash, err := uc.Hasher.Hash(*password)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	user.PasswordHash = hash
	return nil
}
