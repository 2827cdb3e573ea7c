package domain

import "github.com/google/uuid"

// UserID identifies the owner of calculations. It is taken from the subject
// of the bearer token.
type UserID uuid.UUID

// String returns the canonical UUID text form.
func (id UserID) String() string { return uuid.UUID(id).String() }
