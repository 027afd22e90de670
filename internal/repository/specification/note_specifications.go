package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNoteId struct {
	Id int64
}

func (s ByNoteId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Id)
}

// OwnedBy scopes a query to the caller's rows. Combined with ByNoteId it makes
// a foreign note indistinguishable from a missing one.
type OwnedBy struct {
	UserId uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}
