package game

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterGameRoutes wires the read endpoints under /api/games and the
// mutating endpoints under /dashboard/games.
func RegisterGameRoutes(api *gin.RouterGroup, dashboard *gin.RouterGroup, db *gorm.DB, publisher Publisher) {
	repo := NewGameRepository(db)
	controller := NewGameController(repo, publisher)

	games := api.Group("/games")
	{
		games.GET("", controller.GetGames)
		games.GET("/all", controller.GetGameSummaries)
		games.GET("/date/:date", controller.GetGamesByDate)
		games.GET("/:game_id", controller.GetGameByID)
		games.GET("/:game_id/lineups", controller.GetLineups)
		games.GET("/:game_id/scorers", controller.GetScorers)
		games.GET("/:game_id/game-time", controller.GetGameTime)
	}

	dash := dashboard.Group("/games")
	{
		dash.GET("", controller.GetGameSummaries)
		dash.POST("", controller.CreateGame)
		dash.PUT("/:game_id/score", controller.RecordGoal)
		dash.PUT("/:game_id/period", controller.UpdatePeriod)
		dash.GET("/:game_id/game-time", controller.GetGameTime)
	}
}
