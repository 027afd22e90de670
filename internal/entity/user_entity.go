package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is immutable after registration; there are no update or delete
// endpoints. PasswordHash never leaves the service boundary.
type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
