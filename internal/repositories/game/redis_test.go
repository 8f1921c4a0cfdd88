package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/bowling/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) saveGame(rolls ...int) {
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{
		Game: &models.Game{
			ID:        "test-game-id",
			Rolls:     rolls,
			CreatedAt: s.testNow,
			UpdatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestNewRedis_NilConfig() {
	repo, err := NewRedis(nil)
	s.Error(err)
	s.Nil(repo)
}

func (s *RedisRepositoryTestSuite) TestNewRedis_NilClient() {
	repo, err := NewRedis(&Config{})
	s.Error(err)
	s.Nil(repo)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	s.saveGame(10, 3, 4)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().NotNil(game)

	s.Equal("test-game-id", game.ID)
	s.Equal([]int{10, 3, 4}, game.Rolls)
	s.Equal(s.testNow.Unix(), game.CreatedAt.Unix())
	s.Equal(s.testNow.Unix(), game.UpdatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveGame_ReplacesRolls() {
	s.saveGame(1, 2, 3)
	s.saveGame(9)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Equal([]int{9}, game.Rolls)
}

func (s *RedisRepositoryTestSuite) TestSaveGame_NoRolls() {
	s.saveGame()

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Empty(game.Rolls)
}

func (s *RedisRepositoryTestSuite) TestSaveGame_InvalidInput() {
	s.Error(s.repo.SaveGame(s.ctx, nil))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{}))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.Game{}}))
}

func (s *RedisRepositoryTestSuite) TestGetGame_NotFound() {
	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
	s.Nil(game)
}

func (s *RedisRepositoryTestSuite) TestGetGame_EmptyID() {
	game, err := s.repo.GetGame(s.ctx, &GetGameInput{})
	s.Error(err)
	s.Nil(game)
}

func (s *RedisRepositoryTestSuite) TestAppendRoll() {
	s.saveGame(10)
	later := s.testNow.Add(time.Minute)

	game, err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
		GameID:    "test-game-id",
		Pins:      7,
		UpdatedAt: later,
	})
	s.Require().NoError(err)
	s.Equal([]int{10, 7}, game.Rolls)
	s.Equal(later.Unix(), game.UpdatedAt.Unix())
	s.Equal(s.testNow.Unix(), game.CreatedAt.Unix())

	stored, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Equal(game.Rolls, stored.Rolls)
	s.Equal(later.Unix(), stored.UpdatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestAppendRoll_KeepsPlayOrder() {
	s.saveGame()

	for _, pins := range []int{3, 7, 10, 0, 0} {
		_, err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
			GameID:    "test-game-id",
			Pins:      pins,
			UpdatedAt: s.testNow,
		})
		s.Require().NoError(err)
	}

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Equal([]int{3, 7, 10, 0, 0}, game.Rolls)
}

func (s *RedisRepositoryTestSuite) TestAppendRoll_ConcurrentAppendsAreAllStored() {
	s.saveGame()

	const rollers = 50
	errs := make(chan error, rollers)

	var wg sync.WaitGroup
	for i := 0; i < rollers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
				GameID:    "test-game-id",
				Pins:      1,
				UpdatedAt: s.testNow,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Len(game.Rolls, rollers)
}

func (s *RedisRepositoryTestSuite) TestAppendRoll_NotFound() {
	game, err := s.repo.AppendRoll(s.ctx, &AppendRollInput{
		GameID: "missing",
		Pins:   4,
	})
	s.ErrorIs(err, ErrGameNotFound)
	s.Nil(game)

	// No orphaned roll list is left behind
	s.False(s.mr.Exists("game:missing:rolls"))
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	s.saveGame(4, 5)

	err := s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: "test-game-id"})
	s.ErrorIs(err, ErrGameNotFound)
	s.False(s.mr.Exists("game:test-game-id:rolls"))
}

func (s *RedisRepositoryTestSuite) TestDeleteGame_NotFound() {
	err := s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}
