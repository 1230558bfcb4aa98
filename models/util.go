package models

import "github.com/google/uuid"

// NewID generates a fresh UUID for an entity primary key.
func NewID() string {
	return uuid.NewString()
}
