package main

import (
	"context"
	"log"

	"github.com/libscores/libscores/config"
	_ "github.com/libscores/libscores/docs"
	"github.com/libscores/libscores/internal/activity"
	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/game"
	"github.com/libscores/libscores/internal/live"
	"github.com/libscores/libscores/internal/player"
	"github.com/libscores/libscores/internal/season"
	"github.com/libscores/libscores/internal/standing"
	"github.com/libscores/libscores/routes"
)

// @title libscores REST API
// @version 1.0
// @description Football league service with live score broadcasting.
// @host localhost:8088
// @BasePath /
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&club.Club{}, &player.Player{},
		&season.Season{}, &standing.Standing{},
		&game.Game{}, &game.Lineup{}, &game.Scorer{},
		&activity.Activity{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := live.NewHub()
	go hub.Run(ctx)

	r := routes.SetupRoutes(config.DB, cfg, hub)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
