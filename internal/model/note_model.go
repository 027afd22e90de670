package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:text;not null"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
