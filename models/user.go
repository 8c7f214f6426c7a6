package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:80;unique;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
}
