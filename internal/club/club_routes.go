package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/internal/player"
)

func RegisterClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	clubRepo := NewClubRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	clubController := NewClubController(clubRepo, playerRepo, appConfig)

	clubs := router.Group("/clubs")
	{
		clubs.GET("", clubController.GetAllClubs)
		clubs.GET("/suggest", clubController.SuggestClubs)
		clubs.GET("/:club_id", clubController.GetClubByID)
		clubs.GET("/:club_id/players", clubController.GetClubPlayers)
		clubs.POST("", clubController.CreateClub)
		clubs.PUT("/:club_id", clubController.UpdateClub)
		clubs.DELETE("/:club_id", clubController.DeleteClub)
	}
}
