package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libscores/libscores/config"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	players := router.Group("/players")
	{
		players.GET("", playerController.GetAllPlayers)
		players.GET("/:player_id", playerController.GetPlayerByID)
		players.POST("", playerController.CreatePlayer)
		players.PUT("/:player_id", playerController.UpdatePlayer)
		players.DELETE("/:player_id", playerController.DeletePlayer)
	}
}
