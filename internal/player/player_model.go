package player

import (
	"time"

	"github.com/libscores/libscores/internal/models"
)

// Player statuses as stored in the status column.
const (
	StatusActive  = "active"
	StatusInjured = "injured"
	StatusLoaned  = "loaned"
	StatusRetired = "retired"
)

// Player is a registered squad member of a club. Scorer and lineup rows
// reference players by ID.
type Player struct {
	models.BaseModel
	Fullname    string    `gorm:"size:100;not null" json:"fullname"`
	DOB         time.Time `json:"dob"`
	Position    string    `gorm:"size:10" json:"position"` // e.g. GK, CB, CM, ST
	Status      string    `gorm:"size:20;default:active" json:"status"`
	MarketValue float64   `json:"market_value"`
	Photo       string    `gorm:"size:255" json:"photo"`
	ClubID      uint      `gorm:"index" json:"club_id"`
	CountryID   uint      `json:"country_id"`
}
