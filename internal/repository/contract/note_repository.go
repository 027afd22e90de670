package contract

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	// UpdateContent and DeleteOwned run as single owner-scoped statements; the
	// returned bool is false when no owned row matched.
	UpdateContent(ctx context.Context, userId uuid.UUID, id int64, content string) (bool, error)
	DeleteOwned(ctx context.Context, userId uuid.UUID, id int64) (bool, error)
}
