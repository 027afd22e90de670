package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.UserId)
}
