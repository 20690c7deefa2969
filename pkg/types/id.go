package types

import "github.com/google/uuid"

// NewID returns a time-ordered UUID v7, falling back to a random v4 when the
// clock source fails.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
