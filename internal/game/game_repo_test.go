package game

import (
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/player"
	"github.com/libscores/libscores/pkg/apperrors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared across
	// goroutines and serializes transactions the way the production
	// store does with row locks.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&club.Club{}, &player.Player{},
		&Game{}, &Lineup{}, &Scorer{},
	))
	return db
}

type fixture struct {
	home   club.Club
	away   club.Club
	scorer player.Player
	game   Game
}

func seedGame(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		home: club.Club{Name: "Arsenal", Stadium: "Emirates"},
		away: club.Club{Name: "Chelsea", Stadium: "Stamford Bridge"},
	}
	require.NoError(t, db.Create(&f.home).Error)
	require.NoError(t, db.Create(&f.away).Error)

	f.scorer = player.Player{Fullname: "Bukayo Saka", Position: "RW", ClubID: f.home.ID}
	require.NoError(t, db.Create(&f.scorer).Error)

	f.game = Game{
		Home:   f.home.ID,
		Away:   f.away.ID,
		Start:  time.Now().Add(-30 * time.Minute),
		Status: StatusInProgress,
		Period: PeriodFirst,
	}
	require.NoError(t, db.Create(&f.game).Error)
	return f
}

func TestRecordGoalIncrementsMatchingSide(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	detail, scorer, err := repo.RecordGoal(f.game.ID, f.home.ID, f.scorer.ID, 23)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.HomeGoal)
	assert.Equal(t, 0, detail.AwayGoal)
	assert.Equal(t, f.home.Name, detail.HomeTeam.Name)
	assert.Equal(t, f.away.Name, detail.AwayTeam.Name)

	assert.Equal(t, f.game.ID, scorer.GameID)
	assert.Equal(t, f.scorer.ID, scorer.PlayerID)
	assert.Equal(t, 1, scorer.Goal)
	assert.Equal(t, 23, scorer.Minutes)
	require.NotNil(t, scorer.Player)
	assert.Equal(t, f.scorer.Fullname, scorer.Player.Fullname)

	var rows []Scorer
	require.NoError(t, db.Where("game_id = ?", f.game.ID).Find(&rows).Error)
	assert.Len(t, rows, 1)
}

func TestRecordGoalAwaySide(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	detail, _, err := repo.RecordGoal(f.game.ID, f.away.ID, f.scorer.ID, 55)
	require.NoError(t, err)

	assert.Equal(t, 0, detail.HomeGoal)
	assert.Equal(t, 1, detail.AwayGoal)
}

func TestRecordGoalValidation(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	t.Run("unknown game", func(t *testing.T) {
		_, _, err := repo.RecordGoal(9999, f.home.ID, f.scorer.ID, 10)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("team not in game", func(t *testing.T) {
		other := club.Club{Name: "Liverpool"}
		require.NoError(t, db.Create(&other).Error)

		_, _, err := repo.RecordGoal(f.game.ID, other.ID, f.scorer.ID, 10)
		assert.True(t, apperrors.IsInvalidArgument(err))
	})

	t.Run("unknown player", func(t *testing.T) {
		_, _, err := repo.RecordGoal(f.game.ID, f.home.ID, 9999, 10)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("failed calls leave no trace", func(t *testing.T) {
		game, err := repo.GetGameByID(f.game.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, game.HomeGoal)
		assert.Equal(t, 0, game.AwayGoal)

		var count int64
		require.NoError(t, db.Model(&Scorer{}).Where("game_id = ?", f.game.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestRecordGoalConcurrent(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	const goals = 20
	var wg sync.WaitGroup
	errs := make(chan error, goals)

	for i := 0; i < goals; i++ {
		wg.Add(1)
		go func(minute int) {
			defer wg.Done()
			_, _, err := repo.RecordGoal(f.game.ID, f.home.ID, f.scorer.ID, minute)
			errs <- err
		}(i + 1)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	game, err := repo.GetGameByID(f.game.ID)
	require.NoError(t, err)
	assert.Equal(t, goals, game.HomeGoal, "no goal may be lost under concurrency")
	assert.Equal(t, 0, game.AwayGoal)

	var count int64
	require.NoError(t, db.Model(&Scorer{}).Where("game_id = ?", f.game.ID).Count(&count).Error)
	assert.Equal(t, int64(goals), count)
}

func TestUpdatePeriod(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	rows, err := repo.UpdatePeriod(f.game.ID, PeriodHalftime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	game, err := repo.GetGameByID(f.game.ID)
	require.NoError(t, err)
	assert.Equal(t, PeriodHalftime, game.Period)

	rows, err = repo.UpdatePeriod(9999, PeriodSecond)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestCreateGameWithLineups(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	game := Game{
		Home:   f.home.ID,
		Away:   f.away.ID,
		Start:  time.Now().Add(24 * time.Hour),
		Status: StatusScheduled,
		Period: PeriodPending,
	}
	lineups := []Lineup{
		{TeamID: f.home.ID, PlayerID: f.scorer.ID, Number: 7, Position: "RW", Starter: true},
	}

	require.NoError(t, repo.CreateGameWithLineups(&game, lineups))
	assert.NotZero(t, game.ID)

	var stored []Lineup
	require.NoError(t, db.Where("game_id = ?", game.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, f.scorer.ID, stored[0].PlayerID)
	assert.True(t, stored[0].Starter)
}

func TestGetTeamLineups(t *testing.T) {
	db := setupTestDB(t)
	f := seedGame(t, db)
	repo := NewGameRepository(db)

	awayPlayer := player.Player{Fullname: "Cole Palmer", Position: "AM", ClubID: f.away.ID}
	require.NoError(t, db.Create(&awayPlayer).Error)

	require.NoError(t, db.Create(&[]Lineup{
		{GameID: f.game.ID, TeamID: f.home.ID, PlayerID: f.scorer.ID, Number: 7, Position: "RW", Starter: true},
		{GameID: f.game.ID, TeamID: f.away.ID, PlayerID: awayPlayer.ID, Number: 10, Position: "AM", Starter: true},
	}).Error)

	teams, err := repo.GetTeamLineups(f.game.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	byName := map[string][]LineupPlayer{}
	for _, team := range teams {
		byName[team.Name] = team.Players
	}
	require.Len(t, byName["Arsenal"], 1)
	assert.Equal(t, "Bukayo Saka", byName["Arsenal"][0].Name)
	require.Len(t, byName["Chelsea"], 1)
	assert.Equal(t, "Cole Palmer", byName["Chelsea"][0].Name)
}
