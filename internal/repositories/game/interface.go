package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bowling/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/bowling/internal/models"
)

// Repository defines the interface for roll log persistence
type Repository interface {
	// SaveGame persists a game, replacing any stored rolls
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// AppendRoll atomically adds a roll to the end of a game's roll log
	AppendRoll(ctx context.Context, input *AppendRollInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
