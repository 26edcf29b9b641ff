package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account known to the identity provider under InternalID.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	InternalID   string    `gorm:"uniqueIndex;not null;type:varchar(255)"`
	Username     string    `gorm:"not null;type:varchar(150)"`
	DisplayName  string    `gorm:"not null;type:varchar(255)"`
	DateOfBirth  Date      `gorm:"not null"`
	Gender       Gender    `gorm:"not null;type:varchar(16)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
