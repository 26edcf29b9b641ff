package usecases

import (
	"context"

	"room-server/entities"
	"room-server/repositories"
	"room-server/serializers"
)

type RoomUseCase struct {
	RoomRepo repositories.RoomRepository
}

func NewRoomUseCase(roomRepo repositories.RoomRepository) *RoomUseCase {
	return &RoomUseCase{RoomRepo: roomRepo}
}

func (uc *RoomUseCase) ListRooms(ctx context.Context) ([]entities.Room, error) {
	return uc.RoomRepo.GetAll(ctx)
}

func (uc *RoomUseCase) GetRoom(ctx context.Context, id string) (*entities.Room, error) {
	if id == "" {
		return nil, repositories.ErrNotFound
	}
	return uc.RoomRepo.GetByID(ctx, id)
}

func (uc *RoomUseCase) CreateRoom(ctx context.Context, in serializers.RoomInput) (*entities.Room, error) {
	room := &entities.Room{}
	in.ApplyTo(room)
	if err := uc.RoomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (uc *RoomUseCase) UpdateRoom(ctx context.Context, existing *entities.Room, in serializers.RoomInput) (*entities.Room, error) {
	in.ApplyTo(existing)
	if err := uc.RoomRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteRoom removes the room with the given id. The lookup is on rooms, never users.
func (uc *RoomUseCase) DeleteRoom(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrNotFound
	}
	return uc.RoomRepo.Delete(ctx, id)
}
