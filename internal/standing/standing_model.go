package standing

import (
	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/models"
)

// Standing is one row of a season's league table.
type Standing struct {
	models.BaseModel
	SeasonID     uint       `gorm:"index:idx_standing_season_club,unique" json:"season_id"`
	ClubID       uint       `gorm:"index:idx_standing_season_club,unique" json:"club_id"`
	Club         *club.Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Played       int        `json:"played"`
	Wins         int        `json:"wins"`
	Draws        int        `json:"draws"`
	Losses       int        `json:"losses"`
	GoalsFor     int        `json:"goals_for"`
	GoalsAgainst int        `json:"goals_against"`
	Points       int        `json:"points"`
}

// GoalDifference is derived, never stored.
func (s *Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}
