package club

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

	require.NoError(t, db.AutoMigrate(&Club{}))
	return db
}

func TestClubCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	c := Club{Name: "Arsenal", Stadium: "Emirates", Founded: 1886, MarketValue: 1200}
	require.NoError(t, repo.CreateClub(&c))
	require.NotZero(t, c.ID)

	found, err := repo.GetClubByID(c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Arsenal", found.Name)
	assert.Equal(t, 1886, found.Founded)

	found.Stadium = "Emirates Stadium"
	require.NoError(t, repo.UpdateClub(found))
	updated, err := repo.GetClubByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emirates Stadium", updated.Stadium)

	require.NoError(t, repo.DeleteClub(c.ID))
	gone, err := repo.GetClubByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestFindClubByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	require.NoError(t, repo.CreateClub(&Club{Name: "Chelsea"}))

	found, err := repo.FindClubByName("Chelsea")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := repo.FindClubByName("Everton")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetClubByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	found, err := repo.GetClubByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}
