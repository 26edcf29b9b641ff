package repositories

import (
	"context"
	"errors"
	"fmt"

	"room-server/db"
	"room-server/entities"

	"gorm.io/gorm"
)

type roomPgRepository struct {
	db db.Database
}

func NewRoomPgRepository(database db.Database) RoomRepository {
	return &roomPgRepository{db: database}
}

func (r *roomPgRepository) Create(ctx context.Context, room *entities.Room) error {
	if err := r.db.GetDB().WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *roomPgRepository) GetByID(ctx context.Context, id string) (*entities.Room, error) {
	var room entities.Room
	err := r.db.GetDB().WithContext(ctx).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}
	return &room, nil
}

func (r *roomPgRepository) GetAll(ctx context.Context) ([]entities.Room, error) {
	rooms := []entities.Room{}
	if err := r.db.GetDB().WithContext(ctx).Order("created_at ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (r *roomPgRepository) Update(ctx context.Context, room *entities.Room) error {
	if err := r.db.GetDB().WithContext(ctx).Save(room).Error; err != nil {
		return fmt.Errorf("update room %s: %w", room.ID, err)
	}
	return nil
}

func (r *roomPgRepository) Delete(ctx context.Context, id string) error {
	res := r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(&entities.Room{})
	if res.Error != nil {
		return fmt.Errorf("delete room %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
