package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/internal/activity"
	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/game"
	"github.com/libscores/libscores/internal/live"
	"github.com/libscores/libscores/internal/player"
	"github.com/libscores/libscores/internal/season"
	"github.com/libscores/libscores/internal/standing"
)

// SetupRoutes wires every module's routes plus the live WebSocket endpoint.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, hub *live.Hub) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.Static("/public", appConfig.App.PublicDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "libscores API", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	club.RegisterClubRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig)
	season.RegisterSeasonRoutes(api, db, appConfig)
	standing.RegisterStandingRoutes(api, db, appConfig)

	// Operator-facing routes
	dashboard := r.Group("/dashboard")
	game.RegisterGameRoutes(api, dashboard, db, hub)
	activity.RegisterActivityRoutes(api, db, hub)

	live.RegisterLiveRoutes(r, hub)

	return r
}
