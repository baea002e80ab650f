package standing

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/pkg/responses"
)

type StandingController struct {
	repo      StandingRepository
	appConfig *config.Config
}

func NewStandingController(repo StandingRepository, appConfig *config.Config) *StandingController {
	return &StandingController{repo: repo, appConfig: appConfig}
}

type CreateStandingRequest struct {
	SeasonID     uint `json:"season_id" binding:"required"`
	ClubID       uint `json:"club_id" binding:"required"`
	Played       int  `json:"played" binding:"omitempty,gte=0"`
	Wins         int  `json:"wins" binding:"omitempty,gte=0"`
	Draws        int  `json:"draws" binding:"omitempty,gte=0"`
	Losses       int  `json:"losses" binding:"omitempty,gte=0"`
	GoalsFor     int  `json:"goals_for" binding:"omitempty,gte=0"`
	GoalsAgainst int  `json:"goals_against" binding:"omitempty,gte=0"`
	Points       int  `json:"points" binding:"omitempty,gte=0"`
}

type UpdateStandingRequest struct {
	Played       *int `json:"played" binding:"omitempty,gte=0"`
	Wins         *int `json:"wins" binding:"omitempty,gte=0"`
	Draws        *int `json:"draws" binding:"omitempty,gte=0"`
	Losses       *int `json:"losses" binding:"omitempty,gte=0"`
	GoalsFor     *int `json:"goals_for" binding:"omitempty,gte=0"`
	GoalsAgainst *int `json:"goals_against" binding:"omitempty,gte=0"`
	Points       *int `json:"points" binding:"omitempty,gte=0"`
}

// GetSeasonTable godoc
// @Summary Get the league table for a season
// @Description Returns standings ordered by points, goal difference and goals scored.
// @Tags Standings
// @Produce json
// @Param season_id query int true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Standing}
// @Failure 400 {object} responses.ErrorResponse "Missing season_id"
// @Router /standings [get]
func (sc *StandingController) GetSeasonTable(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Query("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "season_id query parameter is required")
		return
	}

	table, err := sc.repo.GetSeasonTable(uint(seasonID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve standings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standings retrieved successfully", table)
}

// CreateStanding godoc
// @Summary Create a standings row
// @Tags Standings
// @Accept json
// @Produce json
// @Param standing body CreateStandingRequest true "Standing Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Standing}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Standing already exists for this season/club"
// @Router /standings [post]
func (sc *StandingController) CreateStanding(c *gin.Context) {
	var req CreateStandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	existing, _ := sc.repo.GetStanding(req.SeasonID, req.ClubID)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Standing already exists for this season and club")
		return
	}

	standing := Standing{
		SeasonID:     req.SeasonID,
		ClubID:       req.ClubID,
		Played:       req.Played,
		Wins:         req.Wins,
		Draws:        req.Draws,
		Losses:       req.Losses,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
		Points:       req.Points,
	}

	if err := sc.repo.CreateStanding(&standing); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create standing: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Standing created successfully", standing)
}

// UpdateStanding godoc
// @Summary Update a standings row
// @Tags Standings
// @Accept json
// @Produce json
// @Param standing_id path uint true "Standing ID"
// @Param standing body UpdateStandingRequest true "Standing Update Data"
// @Success 200 {object} responses.SuccessResponse{data=Standing}
// @Failure 404 {object} responses.ErrorResponse "Standing not found"
// @Router /standings/{standing_id} [put]
func (sc *StandingController) UpdateStanding(c *gin.Context) {
	standingID, err := strconv.ParseUint(c.Param("standing_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid standing ID")
		return
	}

	standing, err := sc.repo.GetStandingByID(uint(standingID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve standing: "+err.Error())
		return
	}
	if standing == nil {
		responses.SendError(c, http.StatusNotFound, "Standing not found")
		return
	}

	var req UpdateStandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if req.Played != nil {
		standing.Played = *req.Played
	}
	if req.Wins != nil {
		standing.Wins = *req.Wins
	}
	if req.Draws != nil {
		standing.Draws = *req.Draws
	}
	if req.Losses != nil {
		standing.Losses = *req.Losses
	}
	if req.GoalsFor != nil {
		standing.GoalsFor = *req.GoalsFor
	}
	if req.GoalsAgainst != nil {
		standing.GoalsAgainst = *req.GoalsAgainst
	}
	if req.Points != nil {
		standing.Points = *req.Points
	}

	if err := sc.repo.UpdateStanding(standing); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update standing: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standing updated successfully", standing)
}

// DeleteStanding godoc
// @Summary Delete a standings row
// @Tags Standings
// @Produce json
// @Param standing_id path uint true "Standing ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Standing not found"
// @Router /standings/{standing_id} [delete]
func (sc *StandingController) DeleteStanding(c *gin.Context) {
	standingID, err := strconv.ParseUint(c.Param("standing_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid standing ID")
		return
	}

	standing, err := sc.repo.GetStandingByID(uint(standingID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve standing: "+err.Error())
		return
	}
	if standing == nil {
		responses.SendError(c, http.StatusNotFound, "Standing not found")
		return
	}

	if err := sc.repo.DeleteStanding(uint(standingID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete standing: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Standing deleted successfully", nil)
}
