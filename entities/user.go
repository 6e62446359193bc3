package entities

import (
	"github.com/google/uuid"
)

// User mirrors the identity provider's subject. The ID comes from the
// provider, never generated locally, so there is no default on the column.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	FullName string    `json:"full_name"`

	Timestamp
}
