package contract

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type UserRepository interface {
	// Create persists a new user. The email uniqueness constraint lives in the
	// store; a violation surfaces as a ConflictError even when two
	// registrations race.
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
