package game

import (
	"time"

	"github.com/KirkDiggler/bowling/internal/models"
)

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type AppendRollInput struct {
	GameID    string
	Pins      int
	UpdatedAt time.Time
}

type DeleteGameInput struct {
	GameID string
}
