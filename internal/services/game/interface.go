package game

import "context"

// Service defines the interface for scoring games
type Service interface {
	// CreateGame starts a new game with an empty roll log
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// RecordRoll adds a roll to a game and returns the updated scores
	RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error)

	// GetScores returns the per-frame and total scores for a game
	GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error)

	// DeleteGame removes a game and its roll log
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
}
