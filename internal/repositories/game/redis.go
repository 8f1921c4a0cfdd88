package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/bowling/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	rollsKeySuffix = ":rolls"

	// maxAppendRetries bounds optimistic-lock retries when concurrent
	// appends to the same game conflict
	maxAppendRetries = 100
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// gameRecord is the JSON stored under the game key. Rolls live in a
// separate list so appends never rewrite the whole game.
type gameRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// reader is the subset of commands shared by *redis.Client and *redis.Tx
type reader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func gameKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
}

func rollsKey(gameID string) string {
	return fmt.Sprintf("%s%s%s", gameKeyPrefix, gameID, rollsKeySuffix)
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(&gameRecord{
		ID:        input.Game.ID,
		CreatedAt: input.Game.CreatedAt,
		UpdatedAt: input.Game.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(input.Game.ID), gameJSON, 0)
	pipe.Del(ctx, rollsKey(input.Game.ID))
	if len(input.Game.Rolls) > 0 {
		pipe.RPush(ctx, rollsKey(input.Game.ID), rollValues(input.Game.Rolls)...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return loadGame(ctx, r.client, input.GameID)
}

// AppendRoll adds a roll to the game's roll log inside a WATCH transaction
// so the game cannot be deleted halfway through. The transaction is retried
// when another writer touches the game between WATCH and EXEC.
func (r *redisRepository) AppendRoll(ctx context.Context, input *AppendRollInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	key := gameKey(input.GameID)

	var game *models.Game
	txf := func(tx *redis.Tx) error {
		record, err := getRecord(ctx, tx, input.GameID)
		if err != nil {
			return err
		}
		record.UpdatedAt = input.UpdatedAt

		gameJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		var rolls *redis.StringSliceCmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			pipe.RPush(ctx, rollsKey(input.GameID), input.Pins)
			rolls = pipe.LRange(ctx, rollsKey(input.GameID), 0, -1)
			return nil
		})
		if err != nil {
			return err
		}

		parsed, err := parseRolls(rolls.Val())
		if err != nil {
			return err
		}

		game = &models.Game{
			ID:        record.ID,
			Rolls:     parsed,
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		}
		return nil
	}

	var err error
	for i := 0; i < maxAppendRetries; i++ {
		err = r.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to append roll: %w", err)
	}

	return game, nil
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, gameKey(input.GameID), rollsKey(input.GameID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

func loadGame(ctx context.Context, c reader, gameID string) (*models.Game, error) {
	record, err := getRecord(ctx, c, gameID)
	if err != nil {
		return nil, err
	}

	values, err := c.LRange(ctx, rollsKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rolls: %w", err)
	}

	rolls, err := parseRolls(values)
	if err != nil {
		return nil, err
	}

	return &models.Game{
		ID:        record.ID,
		Rolls:     rolls,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func getRecord(ctx context.Context, c reader, gameID string) (*gameRecord, error) {
	gameJSON, err := c.Get(ctx, gameKey(gameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var record gameRecord
	if err := json.Unmarshal([]byte(gameJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

func rollValues(rolls []int) []interface{} {
	values := make([]interface{}, len(rolls))
	for i, pins := range rolls {
		values[i] = pins
	}
	return values
}

func parseRolls(values []string) ([]int, error) {
	rolls := make([]int, len(values))
	for i, v := range values {
		pins, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse roll %d: %w", i, err)
		}
		rolls[i] = pins
	}
	return rolls, nil
}
