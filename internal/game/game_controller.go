package game

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/libscores/libscores/internal/live"
	"github.com/libscores/libscores/pkg/apperrors"
	"github.com/libscores/libscores/pkg/validator"
)

// Publisher is the slice of the live hub the controller needs. Events are
// fire-and-forget and must only be published after the store write committed.
type Publisher interface {
	Publish(event string, payload interface{})
}

// GameController handles game related requests
type GameController struct {
	repo      GameRepository
	publisher Publisher
}

// NewGameController creates a new GameController
func NewGameController(repo GameRepository, publisher Publisher) *GameController {
	return &GameController{repo: repo, publisher: publisher}
}

type RecordGoalRequest struct {
	TeamID   uint `json:"team_id" binding:"required"`
	PlayerID uint `json:"player_id" binding:"required"`
	Minutes  int  `json:"minutes" binding:"min=0,max=130"`
}

type UpdatePeriodRequest struct {
	Period Period `json:"period" binding:"required"`
}

type LineupEntry struct {
	PlayerID uint   `json:"playerId" binding:"required"`
	TeamID   uint   `json:"teamId" binding:"required"`
	Number   int    `json:"number"`
	Position string `json:"position"`
	Starter  bool   `json:"start"`
}

type CreateGameRequest struct {
	HomeTeamID uint          `json:"homeTeamId" binding:"required"`
	AwayTeamID uint          `json:"awayTeamId" binding:"required"`
	HomeGoals  int           `json:"homeGoals" binding:"min=0"`
	AwayGoals  int           `json:"awayGoals" binding:"min=0"`
	GameTime   string        `json:"gameTime" binding:"required"`
	SeasonID   uint          `json:"seasonId" binding:"required"`
	Players    []LineupEntry `json:"players"`
}

// respondError maps repository errors onto the wire taxonomy. Everything
// that is not NotFound or InvalidArgument is a store failure.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case apperrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Printf("game: store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func parseGameTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// RecordGoal godoc
// @Summary Record a goal for one side of a game
// @Description Increments the matching goal counter and appends the scorer record in a single transaction, then broadcasts a scoreUpdated event
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param goal body RecordGoalRequest true "Goal data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /dashboard/games/{game_id}/score [put]
func (ctrl *GameController) RecordGoal(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	var req RecordGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "errors": validator.ParseError(err)})
		return
	}

	detail, scorer, err := ctrl.repo.RecordGoal(gameID, req.TeamID, req.PlayerID, req.Minutes)
	if err != nil {
		respondError(c, err)
		return
	}

	// The transaction is committed; viewers may now see the new score.
	ctrl.publisher.Publish(live.EventScoreUpdated, gin.H{
		"game":   detail,
		"scorer": scorer,
	})

	c.JSON(http.StatusOK, gin.H{
		"game":   detail,
		"scorer": scorer,
	})
}

// UpdatePeriod godoc
// @Summary Set the stored period marker of a game
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param period body UpdatePeriodRequest true "Period token"
// @Success 200 {object} Game
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /dashboard/games/{game_id}/period [put]
func (ctrl *GameController) UpdatePeriod(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	var req UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil || !ValidPeriodTransition(req.Period) {
		c.JSON(http.StatusBadRequest, gin.H{"message": `Invalid period value. It must be "first", "halftime", "second", or "fulltime".`})
		return
	}

	rows, err := ctrl.repo.UpdatePeriod(gameID, req.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}

	game, err := ctrl.repo.GetGameByID(gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary Create a game together with its lineups
// @Tags games
// @Accept json
// @Produce json
// @Param game body CreateGameRequest true "Game and lineup data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /dashboard/games [post]
func (ctrl *GameController) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "errors": validator.ParseError(err)})
		return
	}

	start, err := parseGameTime(req.GameTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gameTime. Use RFC3339 or YYYY-MM-DD HH:MM:SS."})
		return
	}

	derived := CalculateGameStatusAndPeriod(start, time.Now())
	game := Game{
		Home:     req.HomeTeamID,
		Away:     req.AwayTeamID,
		Start:    start,
		Status:   derived.Status,
		Period:   PeriodPending,
		HomeGoal: req.HomeGoals,
		AwayGoal: req.AwayGoals,
		SeasonID: req.SeasonID,
	}

	lineups := make([]Lineup, 0, len(req.Players))
	for _, entry := range req.Players {
		lineups = append(lineups, Lineup{
			TeamID:   entry.TeamID,
			PlayerID: entry.PlayerID,
			Number:   entry.Number,
			Position: entry.Position,
			Starter:  entry.Starter,
		})
	}

	if err := ctrl.repo.CreateGameWithLineups(&game, lineups); err != nil {
		log.Printf("game: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while saving the game and lineups."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Game and lineups saved successfully!",
		"gameId":  game.ID,
	})
}

// GetGames godoc
// @Summary List all games with season detail
// @Tags games
// @Produce json
// @Success 200 {array} GameWithSeason
// @Router /api/games [get]
func (ctrl *GameController) GetGames(c *gin.Context) {
	games, err := ctrl.repo.GetGamesWithSeason()
	if err != nil {
		respondError(c, err)
		return
	}
	if len(games) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No games found."})
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGameSummaries godoc
// @Summary List all games with home and away club detail
// @Tags games
// @Produce json
// @Success 200 {array} GameSummary
// @Router /api/games/all [get]
func (ctrl *GameController) GetGameSummaries(c *gin.Context) {
	summaries, err := ctrl.repo.GetGameSummaries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetGameByID godoc
// @Summary Get one game with resolved team references
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} GameDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{game_id} [get]
func (ctrl *GameController) GetGameByID(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	detail, err := ctrl.repo.GetGameDetail(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetGamesByDate godoc
// @Summary List games scheduled on a calendar date
// @Tags games
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /api/games/date/{date} [get]
func (ctrl *GameController) GetGamesByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date. Use YYYY-MM-DD."})
		return
	}

	games, err := ctrl.repo.GetGamesByDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(games) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No games found for this date."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetLineups godoc
// @Summary Get a game's lineups grouped per team
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{game_id}/lineups [get]
func (ctrl *GameController) GetLineups(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	game, err := ctrl.repo.GetGameByID(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game or lineups not found."})
		return
	}

	teams, err := ctrl.repo.GetTeamLineups(gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	lineup := gin.H{}
	if len(teams) > 0 {
		lineup["teamOne"] = teams[0]
	}
	if len(teams) > 1 {
		lineup["teamTwo"] = teams[1]
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        game.ID,
		"status":    game.Status,
		"period":    game.Period,
		"home":      game.Home,
		"away":      game.Away,
		"start":     game.Start,
		"home_goal": game.HomeGoal,
		"away_goal": game.AwayGoal,
		"lineup":    lineup,
	})
}

// GetScorers godoc
// @Summary List a game's goal attributions in minute order
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {array} Scorer
// @Router /api/games/{game_id}/scorers [get]
func (ctrl *GameController) GetScorers(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	game, err := ctrl.repo.GetGameByID(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}

	scorers, err := ctrl.repo.GetScorersByGame(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scorers)
}

// GetGameTime godoc
// @Summary Report a game's current match minute
// @Description Resolves the stored period marker first; otherwise reports wall-clock minutes since kickoff
// @Tags games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{game_id}/game-time [get]
func (ctrl *GameController) GetGameTime(c *gin.Context) {
	gameID, ok := parseIDParam(c, "game_id")
	if !ok {
		return
	}

	game, err := ctrl.repo.GetGameByID(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
		return
	}

	if game.Status == StatusCompleted || game.Period == PeriodFulltime {
		c.JSON(http.StatusOK, gin.H{"message": "90 minutes full time."})
		return
	}
	if game.Period == PeriodHalftime {
		c.JSON(http.StatusOK, gin.H{"message": "Half-time."})
		return
	}

	minutesPassed := int(time.Since(game.Start).Minutes())
	if minutesPassed >= 45 && game.Period == PeriodFirst {
		c.JSON(http.StatusOK, gin.H{"message": "45 minutes half-time."})
		return
	}
	if minutesPassed >= 90 && game.Period == PeriodSecond {
		c.JSON(http.StatusOK, gin.H{"message": "90 minutes full-time."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_minutes": minutesPassed})
}
