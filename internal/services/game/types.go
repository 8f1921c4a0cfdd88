package game

import (
	"github.com/KirkDiggler/bowling/internal/common/clock"
	"github.com/KirkDiggler/bowling/internal/common/uuid"
	"github.com/KirkDiggler/bowling/internal/models"
	gameRepo "github.com/KirkDiggler/bowling/internal/repositories/game"
	"github.com/rs/zerolog"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies, defaulted when nil
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger receives debug events; defaults to a no-op logger
	Logger *zerolog.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// GameID optionally fixes the identifier; a UUID is generated when empty
	GameID string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string
}

// RecordRollInput contains parameters for recording a roll
type RecordRollInput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Pins is the number of pins knocked down. It is not validated.
	Pins int
}

// RecordRollOutput contains the scores after the roll was recorded
type RecordRollOutput struct {
	Scoreboard
}

// GetScoresInput contains parameters for reading a game's scores
type GetScoresInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// GetScoresOutput contains the current scores of a game
type GetScoresOutput struct {
	Scoreboard
}

// Scoreboard is the scored state of a game at a point in time
type Scoreboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// Frames contains every recorded frame, including bonus frames past the tenth
	Frames []models.Frame

	// Scores contains the score of each of the first ten frames, not cumulative
	Scores []models.FrameScore

	// TotalScore is the sum of every resolved frame score
	TotalScore int
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	// GameID is the unique identifier for the game
	GameID string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct {
	// Success indicates if the game was deleted
	Success bool
}
