package game

import (
	"time"

	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/models"
	"github.com/libscores/libscores/internal/player"
)

// Period is the stored match-period marker. It only advances through an
// explicit operator PUT, never from elapsed time.
type Period string

const (
	PeriodPending  Period = "pending"
	PeriodFirst    Period = "first"
	PeriodHalftime Period = "halftime"
	PeriodSecond   Period = "second"
	PeriodFulltime Period = "fulltime"
)

// ValidPeriodTransition reports whether the token is one an operator may
// set. "pending" is the creation default and not a legal target.
func ValidPeriodTransition(p Period) bool {
	switch p {
	case PeriodFirst, PeriodHalftime, PeriodSecond, PeriodFulltime:
		return true
	}
	return false
}

// Game is one fixture between two clubs. The goal counters must always
// match the count of scorer rows attributed to each side; both are written
// in the same transaction.
type Game struct {
	models.BaseModel
	Home     uint       `gorm:"index;not null" json:"home"`
	Away     uint       `gorm:"index;not null" json:"away"`
	HomeClub *club.Club `gorm:"foreignKey:Home" json:"home_club,omitempty"`
	AwayClub *club.Club `gorm:"foreignKey:Away" json:"away_club,omitempty"`
	Start    time.Time  `gorm:"index" json:"start"`
	Status   string     `gorm:"size:20" json:"status"`
	Period   Period     `gorm:"size:10;default:pending" json:"period"`
	HomeGoal int        `gorm:"default:0" json:"home_goal"`
	AwayGoal int        `gorm:"default:0" json:"away_goal"`
	SeasonID uint       `gorm:"index" json:"season_id"`
}

// Lineup associates a player with a game and the club they play for in it.
type Lineup struct {
	models.BaseModel
	GameID   uint           `gorm:"index;not null" json:"game_id"`
	TeamID   uint           `gorm:"index;not null" json:"team_id"`
	PlayerID uint           `gorm:"index;not null" json:"player_id"`
	Player   *player.Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Number   int            `json:"number"`
	Position string         `gorm:"size:10" json:"position"`
	Starter  bool           `json:"start"`
}

// Scorer is one goal attribution. Append-only; goal is always 1 so a
// game's score is the row count per side.
type Scorer struct {
	models.BaseModel
	GameID   uint           `gorm:"index;not null" json:"game_id"`
	PlayerID uint           `gorm:"index;not null" json:"player_id"`
	Player   *player.Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Goal     int            `gorm:"default:1" json:"goal"`
	Minutes  int            `json:"minutes"`
}

// TeamRef is the reduced club shape embedded in broadcast payloads.
type TeamRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GameDetail is the game shape shared by the score/activity responses and
// their broadcast payloads: the raw row plus resolved home/away teams.
type GameDetail struct {
	ID       uint      `json:"id"`
	Start    time.Time `json:"start"`
	Status   string    `json:"status"`
	Period   Period    `json:"period"`
	HomeGoal int       `json:"home_goal"`
	AwayGoal int       `json:"away_goal"`
	HomeTeam TeamRef   `json:"home_team"`
	AwayTeam TeamRef   `json:"away_team"`
}

// GameSummary is one row of the games listing with club display fields
// joined in.
type GameSummary struct {
	GameID              uint      `json:"gameId"`
	GameTime            time.Time `json:"gameTime"`
	Status              string    `json:"status"`
	Period              Period    `json:"period"`
	HomeTeamName        string    `json:"homeTeamName"`
	HomeTeamBadge       string    `json:"homeTeamBadge"`
	HomeTeamMarketValue float64   `json:"homeTeamMarketValue"`
	AwayTeamName        string    `json:"awayTeamName"`
	AwayTeamBadge       string    `json:"awayTeamBadge"`
	AwayTeamMarketValue float64   `json:"awayTeamMarketValue"`
	HomeGoal            int       `json:"home_goal"`
	AwayGoal            int       `json:"away_goal"`
}

// TeamLineup groups a game's lineup entries for one side.
type TeamLineup struct {
	TeamID  uint           `json:"teamId"`
	Name    string         `json:"teamName"`
	Badge   string         `json:"badge"`
	Stadium string         `json:"stadium"`
	Players []LineupPlayer `json:"players"`
}

// LineupPlayer is one player's entry in a team lineup.
type LineupPlayer struct {
	PlayerID uint   `json:"playerId"`
	Name     string `json:"playerName"`
	Position string `json:"position"`
	Number   int    `json:"number"`
	Starter  bool   `json:"start"`
}
