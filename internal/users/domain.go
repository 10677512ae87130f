package users

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted user record. IDs and timestamps are generated by the
// database; FullName is optional.
type User struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
