package game

import (
	"context"
	"errors"

	"github.com/KirkDiggler/bowling/internal/bowling"
	"github.com/KirkDiggler/bowling/internal/common/clock"
	"github.com/KirkDiggler/bowling/internal/common/uuid"
	"github.com/KirkDiggler/bowling/internal/models"
	gameRepo "github.com/KirkDiggler/bowling/internal/repositories/game"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        zerolog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	s := &service{
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        zerolog.Nop(),
	}

	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.uuidGenerator == nil {
		s.uuidGenerator = uuid.New()
	}
	if cfg.Logger != nil {
		s.logger = cfg.Logger.With().Str("component", "game_service").Logger()
	}

	return s, nil
}

// CreateGame starts a new game with an empty roll log
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	gameID := input.GameID
	if gameID == "" {
		gameID = s.uuidGenerator.NewUUID()
	} else {
		// A caller-supplied ID must not overwrite an existing roll log
		existingGame, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
			GameID: gameID,
		})
		if err == nil && existingGame != nil {
			return nil, ErrGameAlreadyExists
		}
		if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, err
		}
	}
	now := s.clock.Now()

	err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: &models.Game{
			ID:        gameID,
			Rolls:     []int{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("game_id", gameID).Msg("created game")

	return &CreateGameOutput{
		GameID: gameID,
	}, nil
}

// RecordRoll adds a roll to a game and returns the updated scores
func (s *service) RecordRoll(ctx context.Context, input *RecordRollInput) (*RecordRollOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.AppendRoll(ctx, &gameRepo.AppendRollInput{
		GameID:    input.GameID,
		Pins:      input.Pins,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	board := scoreboard(game)

	s.logger.Debug().
		Str("game_id", game.ID).
		Int("pins", input.Pins).
		Int("frames", len(board.Frames)).
		Int("total_score", board.TotalScore).
		Msg("recorded roll")

	return &RecordRollOutput{Scoreboard: board}, nil
}

// GetScores returns the per-frame and total scores for a game
func (s *service) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &GetScoresOutput{Scoreboard: scoreboard(game)}, nil
}

// DeleteGame removes a game and its roll log
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Debug().Str("game_id", input.GameID).Msg("deleted game")

	return &DeleteGameOutput{
		Success: true,
	}, nil
}

// scoreboard replays the stored roll log through a fresh tracker
func scoreboard(game *models.Game) Scoreboard {
	tracker := bowling.Replay(game.Rolls)

	return Scoreboard{
		GameID:     game.ID,
		Frames:     tracker.Frames(),
		Scores:     tracker.ScoresByFrame(),
		TotalScore: tracker.TotalScore(),
	}
}

func mapRepoError(err error) error {
	if errors.Is(err, gameRepo.ErrGameNotFound) {
		return ErrGameNotFound
	}
	return err
}
