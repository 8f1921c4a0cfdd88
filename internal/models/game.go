package models

import (
	"time"
)

// Game is the persisted roll log of a single scored game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Rolls contains every recorded pin count in play order
	Rolls []int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the last roll was recorded
	UpdatedAt time.Time
}
