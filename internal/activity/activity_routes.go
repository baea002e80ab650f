package activity

import (
	"github.com/gin-gonic/gin"
	"github.com/libscores/libscores/internal/game"
	"gorm.io/gorm"
)

// RegisterActivityRoutes wires the activity endpoints under /api.
func RegisterActivityRoutes(api *gin.RouterGroup, db *gorm.DB, publisher game.Publisher) {
	repo := NewActivityRepository(db)
	gameRepo := game.NewGameRepository(db)
	controller := NewActivityController(repo, gameRepo, publisher)

	api.PUT("/games/:game_id/activity", controller.RecordActivity)
	api.GET("/games/:game_id/activities", controller.GetActivitiesByGame)
	api.PUT("/activities/:activity_id", controller.UpdateActivity)
}
