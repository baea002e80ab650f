package club

import (
	"github.com/libscores/libscores/internal/models"
)

// Club is a league team identity. Games reference clubs as home/away sides,
// lineups and activities reference them as the acting team.
type Club struct {
	models.BaseModel
	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Badge       string  `gorm:"size:255" json:"badge"`
	Founded     int     `json:"founded"`
	Squad       int     `json:"squad"`
	Stadium     string  `gorm:"size:100" json:"stadium"`
	MarketValue float64 `json:"market_value"`
}

// Suggestion is the reduced club shape returned by the typeahead endpoint.
type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
