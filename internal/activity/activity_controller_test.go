package activity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/game"
	"github.com/libscores/libscores/internal/live"
	"github.com/libscores/libscores/internal/player"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []struct {
		Event   string
		Payload interface{}
	}
}

func (p *recordingPublisher) Publish(event string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, struct {
		Event   string
		Payload interface{}
	}{event, payload})
}

func (p *recordingPublisher) all() []struct {
	Event   string
	Payload interface{}
} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(p.events[:0:0], p.events...)
}

type fixture struct {
	db   *gorm.DB
	home club.Club
	away club.Club
	game game.Game
}

func setup(t *testing.T) (*gin.Engine, *recordingPublisher, fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&club.Club{}, &player.Player{},
		&game.Game{}, &game.Lineup{}, &game.Scorer{},
		&Activity{},
	))

	f := fixture{
		db:   db,
		home: club.Club{Name: "Arsenal"},
		away: club.Club{Name: "Chelsea"},
	}
	require.NoError(t, db.Create(&f.home).Error)
	require.NoError(t, db.Create(&f.away).Error)

	f.game = game.Game{
		Home:   f.home.ID,
		Away:   f.away.ID,
		Start:  time.Now().Add(-20 * time.Minute),
		Status: game.StatusInProgress,
		Period: game.PeriodFirst,
	}
	require.NoError(t, db.Create(&f.game).Error)

	pub := &recordingPublisher{}
	r := gin.New()
	RegisterActivityRoutes(r.Group("/api"), db, pub)
	return r, pub, f
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestRecordActivity(t *testing.T) {
	r, pub, f := setup(t)

	w, body := doJSON(t, r, http.MethodPut, "/api/games/1/activity", gin.H{
		"team_id": f.away.ID,
		"type":    "yellow card",
		"minutes": 34,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	activity := body["activity"].(map[string]interface{})
	assert.Equal(t, "Chelsea", activity["team"])
	assert.Equal(t, "yellow card", activity["type"])
	assert.Equal(t, float64(34), activity["minutes"])

	embedded := activity["game"].(map[string]interface{})
	assert.Equal(t, float64(f.game.ID), embedded["id"])

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, live.EventActivityAdded, events[0].Event)

	var stored Activity
	require.NoError(t, f.db.First(&stored).Error)
	assert.Equal(t, f.away.ID, stored.TeamID)
	assert.Equal(t, "yellow card", stored.Type)
}

func TestRecordActivityAcceptsAnyLabel(t *testing.T) {
	r, _, f := setup(t)

	// The type is free form, not restricted to the labels the UI offers.
	w, _ := doJSON(t, r, http.MethodPut, "/api/games/1/activity", gin.H{
		"team_id": f.home.ID,
		"type":    "drinks break",
		"minutes": 60,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRecordActivityValidation(t *testing.T) {
	r, pub, f := setup(t)

	t.Run("foreign team", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPut, "/api/games/1/activity", gin.H{
			"team_id": f.away.ID + 100,
			"type":    "substitution",
			"minutes": 60,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["message"], "team mismatch")
	})

	t.Run("missing type", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/games/1/activity", gin.H{
			"team_id": f.home.ID,
			"minutes": 60,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/games/999/activity", gin.H{
			"team_id": f.home.ID,
			"type":    "substitution",
			"minutes": 60,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	assert.Empty(t, pub.all(), "rejected requests must not broadcast")
}

func TestUpdateActivity(t *testing.T) {
	r, pub, f := setup(t)

	seed := Activity{GameID: f.game.ID, TeamID: f.home.ID, Type: "yellow card", Minutes: 12}
	require.NoError(t, f.db.Create(&seed).Error)

	w, body := doJSON(t, r, http.MethodPut, "/api/activities/1", gin.H{
		"type":    "red card",
		"minutes": 14,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	activity := body["activity"].(map[string]interface{})
	assert.Equal(t, "red card", activity["type"])
	assert.Equal(t, float64(14), activity["minutes"])
	assert.Equal(t, "Arsenal", activity["team"])

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, live.EventActivityUpdated, events[0].Event)

	payload := events[0].Payload.(gin.H)
	assert.Equal(t, f.game.ID, payload["game_id"])
	assert.Equal(t, f.home.ID, payload["team_id"])

	var stored Activity
	require.NoError(t, f.db.First(&stored, seed.ID).Error)
	assert.Equal(t, "red card", stored.Type)
	assert.Equal(t, 14, stored.Minutes)
}

func TestUpdateActivityNotFound(t *testing.T) {
	r, pub, _ := setup(t)

	w, _ := doJSON(t, r, http.MethodPut, "/api/activities/999", gin.H{"type": "red card"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, pub.all())
}

func TestGetActivitiesByGame(t *testing.T) {
	r, _, f := setup(t)

	require.NoError(t, f.db.Create(&[]Activity{
		{GameID: f.game.ID, TeamID: f.home.ID, Type: "substitution", Minutes: 60},
		{GameID: f.game.ID, TeamID: f.away.ID, Type: "yellow card", Minutes: 15},
	}).Error)

	w, body := doJSON(t, r, http.MethodGet, "/api/games/1/activities", nil)
	require.Equal(t, http.StatusOK, w.Code)

	activities := body["activities"].([]interface{})
	require.Len(t, activities, 2)

	// Ordered by minute, with team ids resolved to names.
	first := activities[0].(map[string]interface{})
	assert.Equal(t, "Chelsea", first["team"])
	assert.Equal(t, float64(15), first["minutes"])
	second := activities[1].(map[string]interface{})
	assert.Equal(t, "Arsenal", second["team"])
}
