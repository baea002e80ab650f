package standing

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/libscores/libscores/internal/club"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&club.Club{}, &Standing{}))
	return db
}

func TestGetSeasonTableOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStandingRepository(db)

	clubs := []club.Club{{Name: "Arsenal"}, {Name: "Chelsea"}, {Name: "Liverpool"}, {Name: "Spurs"}}
	for i := range clubs {
		require.NoError(t, db.Create(&clubs[i]).Error)
	}

	// Arsenal and Liverpool are level on points; Liverpool has the better
	// goal difference. Chelsea and Spurs are level on points and goal
	// difference; Chelsea has scored more.
	rows := []Standing{
		{SeasonID: 1, ClubID: clubs[0].ID, Points: 20, GoalsFor: 18, GoalsAgainst: 10},
		{SeasonID: 1, ClubID: clubs[1].ID, Points: 15, GoalsFor: 14, GoalsAgainst: 12},
		{SeasonID: 1, ClubID: clubs[2].ID, Points: 20, GoalsFor: 25, GoalsAgainst: 8},
		{SeasonID: 1, ClubID: clubs[3].ID, Points: 15, GoalsFor: 10, GoalsAgainst: 8},
		// Different season, must not leak into the table.
		{SeasonID: 2, ClubID: clubs[0].ID, Points: 99, GoalsFor: 50},
	}
	for i := range rows {
		require.NoError(t, repo.CreateStanding(&rows[i]))
	}

	table, err := repo.GetSeasonTable(1)
	require.NoError(t, err)
	require.Len(t, table, 4)

	names := make([]string, 0, len(table))
	for _, s := range table {
		require.NotNil(t, s.Club)
		names = append(names, s.Club.Name)
	}
	assert.Equal(t, []string{"Liverpool", "Arsenal", "Chelsea", "Spurs"}, names)
}

func TestGoalDifference(t *testing.T) {
	s := Standing{GoalsFor: 18, GoalsAgainst: 25}
	assert.Equal(t, -7, s.GoalDifference())
}

func TestGetStandingBySeasonAndClub(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStandingRepository(db)

	c := club.Club{Name: "Arsenal"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, repo.CreateStanding(&Standing{SeasonID: 1, ClubID: c.ID, Points: 3}))

	found, err := repo.GetStanding(1, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 3, found.Points)

	missing, err := repo.GetStanding(2, c.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
