package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a current or past postal address of a user.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID     uuid.UUID // The owning user.
	Label      string    // A user-defined label, e.g., "Home".
	Street     string
	City       string
	State      string // Two-letter jurisdiction code.
	PostalCode string
	IsCurrent  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
