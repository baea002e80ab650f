package season

import (
	"time"

	"github.com/libscores/libscores/internal/models"
)

type SeasonStatus string

const (
	StatusUpcoming  SeasonStatus = "upcoming"
	StatusOngoing   SeasonStatus = "ongoing"
	StatusCompleted SeasonStatus = "completed"
)

// Season is one edition of a competition; games carry a season_id.
type Season struct {
	models.BaseModel
	CompetitionID uint         `gorm:"index" json:"competition_id"`
	Start         time.Time    `json:"start"`
	End           time.Time    `json:"end"`
	Teams         int          `json:"teams"`
	Status        SeasonStatus `gorm:"size:20;default:upcoming" json:"status"`
}
