package standing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libscores/libscores/config"
)

func RegisterStandingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	standingRepo := NewStandingRepository(db)
	standingController := NewStandingController(standingRepo, appConfig)

	standings := router.Group("/standings")
	{
		standings.GET("", standingController.GetSeasonTable)
		standings.POST("", standingController.CreateStanding)
		standings.PUT("/:standing_id", standingController.UpdateStanding)
		standings.DELETE("/:standing_id", standingController.DeleteStanding)
	}
}
