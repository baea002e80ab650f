package activity

import (
	"github.com/libscores/libscores/internal/game"
	"github.com/libscores/libscores/internal/models"
)

// Activity is one in-match event attribution (substitution, card, ...).
// The type label is free form; rows are append-only apart from the
// operator edit endpoint.
type Activity struct {
	models.BaseModel
	GameID  uint   `gorm:"index;not null" json:"game_id"`
	TeamID  uint   `gorm:"index;not null" json:"team_id"`
	Type    string `gorm:"size:50;not null" json:"type"`
	Minutes int    `json:"minutes"`
}

// ActivityView is the wire shape with the team reference resolved to its
// display name and the full game detail embedded.
type ActivityView struct {
	ID      uint             `json:"id"`
	Game    *game.GameDetail `json:"game"`
	Team    string           `json:"team"`
	Type    string           `json:"type"`
	Minutes int              `json:"minutes"`
}
