package season

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libscores/libscores/config"
)

func RegisterSeasonRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	seasonRepo := NewSeasonRepository(db)
	seasonController := NewSeasonController(seasonRepo, appConfig)

	seasons := router.Group("/seasons")
	{
		seasons.GET("", seasonController.GetAllSeasons)
		seasons.GET("/:season_id", seasonController.GetSeasonByID)
		seasons.POST("", seasonController.CreateSeason)
		seasons.PUT("/:season_id", seasonController.UpdateSeason)
		seasons.DELETE("/:season_id", seasonController.DeleteSeason)
	}
}
