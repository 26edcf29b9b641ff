package repositories

import (
	"context"
	"errors"

	"room-server/entities"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	// ExistsByInternalID reports whether a user other than excludeID already
	// holds internalID. An empty excludeID checks every user.
	ExistsByInternalID(ctx context.Context, internalID, excludeID string) (bool, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *entities.Room) error
	GetByID(ctx context.Context, id string) (*entities.Room, error)
	GetAll(ctx context.Context) ([]entities.Room, error)
	Update(ctx context.Context, room *entities.Room) error
	Delete(ctx context.Context, id string) error
}
