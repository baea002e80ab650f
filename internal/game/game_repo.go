package game

import (
	"errors"
	"time"

	"github.com/libscores/libscores/internal/club"
	"github.com/libscores/libscores/internal/player"
	"github.com/libscores/libscores/pkg/apperrors"
	"gorm.io/gorm"
)

// GameWithSeason is a game row with its season's columns joined in.
type GameWithSeason struct {
	Game
	CompetitionID uint      `json:"competition_id"`
	SeasonStart   time.Time `json:"season_start"`
	SeasonEnd     time.Time `json:"season_end"`
	SeasonTeams   int       `json:"season_teams"`
	SeasonStatus  string    `json:"season_status"`
}

type GameRepository interface {
	CreateGameWithLineups(game *Game, lineups []Lineup) error
	GetGameByID(id uint) (*Game, error)
	GetGameDetail(id uint) (*GameDetail, error)
	GetGameSummaries() ([]GameSummary, error)
	GetGamesWithSeason() ([]GameWithSeason, error)
	GetGamesByDate(date string) ([]GameSummary, error)
	GetTeamLineups(gameID uint) ([]TeamLineup, error)
	GetScorersByGame(gameID uint) ([]Scorer, error)
	UpdatePeriod(gameID uint, period Period) (int64, error)
	RecordGoal(gameID, teamID, playerID uint, minutes int) (*GameDetail, *Scorer, error)

	// Runs txFunc against a repository bound to a single transaction.
	WithTransaction(txFunc func(GameRepository) error) error

	// Transaction-scoped primitives used by RecordGoal.
	IncrementGoal(gameID uint, side string) error
	CreateScorer(scorer *Scorer) error
}

// GormGameRepository implements GameRepository using GORM
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GormGameRepository
func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormGameRepository) WithTransaction(txFunc func(GameRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormGameRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// CreateGameWithLineups inserts the game row and its lineup entries as one
// atomic unit; a failed lineup insert rolls the game back too.
func (r *GormGameRepository) CreateGameWithLineups(game *Game, lineups []Lineup) error {
	return r.WithTransaction(func(txRepo GameRepository) error {
		tx := txRepo.(*GormGameRepository).db
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		for i := range lineups {
			lineups[i].GameID = game.ID
		}
		if len(lineups) == 0 {
			return nil
		}
		return tx.Create(&lineups).Error
	})
}

func (r *GormGameRepository) GetGameByID(id uint) (*Game, error) {
	var game Game
	err := r.db.First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// GetGameDetail resolves the game row plus reduced home/away team refs,
// the shape shared by score/activity responses and broadcast payloads.
func (r *GormGameRepository) GetGameDetail(id uint) (*GameDetail, error) {
	game, err := r.GetGameByID(id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}

	var homeClub, awayClub club.Club
	if err := r.db.First(&homeClub, game.Home).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.First(&awayClub, game.Away).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &GameDetail{
		ID:       game.ID,
		Start:    game.Start,
		Status:   game.Status,
		Period:   game.Period,
		HomeGoal: game.HomeGoal,
		AwayGoal: game.AwayGoal,
		HomeTeam: TeamRef{ID: homeClub.ID, Name: homeClub.Name},
		AwayTeam: TeamRef{ID: awayClub.ID, Name: awayClub.Name},
	}, nil
}

func (r *GormGameRepository) GetGameSummaries() ([]GameSummary, error) {
	var summaries []GameSummary
	err := r.db.Model(&Game{}).
		Select(`games.id AS game_id,
			games.start AS game_time,
			games.status,
			games.period,
			games.home_goal,
			games.away_goal,
			home_club.name AS home_team_name,
			home_club.badge AS home_team_badge,
			home_club.market_value AS home_team_market_value,
			away_club.name AS away_team_name,
			away_club.badge AS away_team_badge,
			away_club.market_value AS away_team_market_value`).
		Joins("JOIN clubs AS home_club ON games.home = home_club.id").
		Joins("JOIN clubs AS away_club ON games.away = away_club.id").
		Scan(&summaries).Error
	return summaries, err
}

func (r *GormGameRepository) GetGamesWithSeason() ([]GameWithSeason, error) {
	var games []GameWithSeason
	err := r.db.Model(&Game{}).
		Select(`games.*,
			seasons.competition_id,
			seasons.start AS season_start,
			seasons."end" AS season_end,
			seasons.teams AS season_teams,
			seasons.status AS season_status`).
		Joins("LEFT JOIN seasons ON games.season_id = seasons.id").
		Order("games.start DESC").
		Scan(&games).Error
	return games, err
}

func (r *GormGameRepository) GetGamesByDate(date string) ([]GameSummary, error) {
	var summaries []GameSummary
	err := r.db.Model(&Game{}).
		Select(`games.id AS game_id,
			games.start AS game_time,
			games.status,
			games.period,
			games.home_goal,
			games.away_goal,
			home_club.name AS home_team_name,
			home_club.badge AS home_team_badge,
			home_club.market_value AS home_team_market_value,
			away_club.name AS away_team_name,
			away_club.badge AS away_team_badge,
			away_club.market_value AS away_team_market_value`).
		Joins("JOIN clubs AS home_club ON games.home = home_club.id").
		Joins("JOIN clubs AS away_club ON games.away = away_club.id").
		Where("DATE(games.start) = ?", date).
		Order("games.start ASC").
		Scan(&summaries).Error
	return summaries, err
}

// GetTeamLineups returns the game's lineup grouped per side with player
// detail resolved.
func (r *GormGameRepository) GetTeamLineups(gameID uint) ([]TeamLineup, error) {
	var lineups []Lineup
	err := r.db.Preload("Player").Where("game_id = ?", gameID).Find(&lineups).Error
	if err != nil {
		return nil, err
	}

	byTeam := make(map[uint]*TeamLineup)
	order := make([]uint, 0, 2)
	for _, entry := range lineups {
		tl, ok := byTeam[entry.TeamID]
		if !ok {
			var c club.Club
			if err := r.db.First(&c, entry.TeamID).Error; err != nil {
				return nil, err
			}
			tl = &TeamLineup{
				TeamID:  c.ID,
				Name:    c.Name,
				Badge:   c.Badge,
				Stadium: c.Stadium,
			}
			byTeam[entry.TeamID] = tl
			order = append(order, entry.TeamID)
		}

		lp := LineupPlayer{
			PlayerID: entry.PlayerID,
			Position: entry.Position,
			Number:   entry.Number,
			Starter:  entry.Starter,
		}
		if entry.Player != nil {
			lp.Name = entry.Player.Fullname
		}
		tl.Players = append(tl.Players, lp)
	}

	result := make([]TeamLineup, 0, len(order))
	for _, teamID := range order {
		result = append(result, *byTeam[teamID])
	}
	return result, nil
}

func (r *GormGameRepository) GetScorersByGame(gameID uint) ([]Scorer, error) {
	var scorers []Scorer
	err := r.db.Preload("Player").
		Where("game_id = ?", gameID).
		Order("minutes ASC").
		Find(&scorers).Error
	return scorers, err
}

// UpdatePeriod sets the stored period column and reports how many rows
// matched, so callers can distinguish a missing game.
func (r *GormGameRepository) UpdatePeriod(gameID uint, period Period) (int64, error) {
	res := r.db.Model(&Game{}).Where("id = ?", gameID).Update("period", period)
	return res.RowsAffected, res.Error
}

// IncrementGoal applies the side's counter bump as a store-level atomic
// expression. Never read-modify-write in the application tier: concurrent
// goals for the same side must not lose updates.
func (r *GormGameRepository) IncrementGoal(gameID uint, side string) error {
	var column string
	switch side {
	case "home":
		column = "home_goal"
	case "away":
		column = "away_goal"
	default:
		return apperrors.InvalidArgument("side must be home or away")
	}

	res := r.db.Model(&Game{}).
		Where("id = ?", gameID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("game")
	}
	return nil
}

func (r *GormGameRepository) CreateScorer(scorer *Scorer) error {
	return r.db.Create(scorer).Error
}

// RecordGoal applies one goal to a game: validates the game, the team's
// membership in it and the player, then bumps the matching counter and
// appends the scorer row in a single transaction. The returned detail and
// scorer are read back after commit.
func (r *GormGameRepository) RecordGoal(gameID, teamID, playerID uint, minutes int) (*GameDetail, *Scorer, error) {
	game, err := r.GetGameByID(gameID)
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, apperrors.NotFound("game")
	}

	var side string
	switch teamID {
	case game.Home:
		side = "home"
	case game.Away:
		side = "away"
	default:
		return nil, nil, apperrors.InvalidArgument("team mismatch")
	}

	var p player.Player
	if err := r.db.First(&p, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("player")
		}
		return nil, nil, err
	}

	scorer := Scorer{
		GameID:   gameID,
		PlayerID: playerID,
		Goal:     1,
		Minutes:  minutes,
	}

	err = r.WithTransaction(func(txRepo GameRepository) error {
		if err := txRepo.IncrementGoal(gameID, side); err != nil {
			return err
		}
		return txRepo.CreateScorer(&scorer)
	})
	if err != nil {
		return nil, nil, err
	}

	detail, err := r.GetGameDetail(gameID)
	if err != nil {
		return nil, nil, err
	}
	scorer.Player = &p
	return detail, &scorer, nil
}
