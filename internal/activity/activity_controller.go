package activity

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/libscores/libscores/internal/game"
	"github.com/libscores/libscores/internal/live"
	"github.com/libscores/libscores/pkg/validator"
)

// ActivityController handles activity related requests
type ActivityController struct {
	repo      ActivityRepository
	gameRepo  game.GameRepository
	publisher game.Publisher
}

// NewActivityController creates a new ActivityController
func NewActivityController(repo ActivityRepository, gameRepo game.GameRepository, publisher game.Publisher) *ActivityController {
	return &ActivityController{repo: repo, gameRepo: gameRepo, publisher: publisher}
}

type RecordActivityRequest struct {
	TeamID  uint   `json:"team_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Minutes int    `json:"minutes" binding:"min=0,max=130"`
}

type UpdateActivityRequest struct {
	Type    *string `json:"type"`
	Minutes *int    `json:"minutes"`
}

// teamName maps a team id to its display name within the game, or "" when
// the team is not one of the two sides.
func teamName(detail *game.GameDetail, teamID uint) string {
	switch teamID {
	case detail.HomeTeam.ID:
		return detail.HomeTeam.Name
	case detail.AwayTeam.ID:
		return detail.AwayTeam.Name
	}
	return ""
}

func (ctrl *ActivityController) view(detail *game.GameDetail, a *Activity) ActivityView {
	return ActivityView{
		ID:      a.ID,
		Game:    detail,
		Team:    teamName(detail, a.TeamID),
		Type:    a.Type,
		Minutes: a.Minutes,
	}
}

// RecordActivity godoc
// @Summary Record an in-match activity for a game
// @Description Appends the activity and broadcasts an activityAdded event once the row is durable
// @Tags activities
// @Accept json
// @Produce json
// @Param game_id path int true "Game ID"
// @Param activity body RecordActivityRequest true "Activity data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{game_id}/activity [put]
func (ctrl *ActivityController) RecordActivity(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game_id"})
		return
	}

	var req RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "errors": validator.ParseError(err)})
		return
	}

	detail, err := ctrl.gameRepo.GetGameDetail(uint(gameID))
	if err != nil {
		log.Printf("activity: store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game or teams not found"})
		return
	}
	if teamName(detail, req.TeamID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "team mismatch"})
		return
	}

	activity := Activity{
		GameID:  uint(gameID),
		TeamID:  req.TeamID,
		Type:    req.Type,
		Minutes: req.Minutes,
	}
	if err := ctrl.repo.CreateActivity(&activity); err != nil {
		log.Printf("activity: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}

	payload := gin.H{
		"id":       activity.ID,
		"game":     detail,
		"activity": ctrl.view(detail, &activity),
	}

	// Row is durable; broadcast before responding, fire-and-forget.
	ctrl.publisher.Publish(live.EventActivityAdded, payload)

	c.JSON(http.StatusOK, payload)
}

// UpdateActivity godoc
// @Summary Edit an existing activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity ID"
// @Param activity body UpdateActivityRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/activities/{activity_id} [put]
func (ctrl *ActivityController) UpdateActivity(c *gin.Context) {
	activityID, err := strconv.ParseUint(c.Param("activity_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity_id"})
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "errors": validator.ParseError(err)})
		return
	}

	activity, err := ctrl.repo.GetActivityByID(uint(activityID))
	if err != nil {
		log.Printf("activity: store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}
	if activity == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
		return
	}

	if req.Type != nil {
		activity.Type = *req.Type
	}
	if req.Minutes != nil {
		activity.Minutes = *req.Minutes
	}
	if err := ctrl.repo.UpdateActivity(activity); err != nil {
		log.Printf("activity: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}

	detail, err := ctrl.gameRepo.GetGameDetail(activity.GameID)
	if err != nil || detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game or teams not found"})
		return
	}

	view := ctrl.view(detail, activity)
	ctrl.publisher.Publish(live.EventActivityUpdated, gin.H{
		"game_id":  activity.GameID,
		"team_id":  activity.TeamID,
		"activity": view,
	})

	c.JSON(http.StatusOK, gin.H{"activity": view})
}

// GetActivitiesByGame godoc
// @Summary List a game's activities with team names resolved
// @Tags activities
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/games/{game_id}/activities [get]
func (ctrl *ActivityController) GetActivitiesByGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game_id"})
		return
	}

	detail, err := ctrl.gameRepo.GetGameDetail(uint(gameID))
	if err != nil {
		log.Printf("activity: store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game or teams not found"})
		return
	}

	activities, err := ctrl.repo.GetActivitiesByGame(uint(gameID))
	if err != nil {
		log.Printf("activity: store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
		return
	}

	formatted := make([]ActivityView, 0, len(activities))
	for i := range activities {
		formatted = append(formatted, ctrl.view(detail, &activities[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"game":       detail,
		"activities": formatted,
	})
}
