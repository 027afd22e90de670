package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        int64
	Content   string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
