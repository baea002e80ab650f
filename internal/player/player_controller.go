package player

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/pkg/responses"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreatePlayerRequest struct {
	Fullname    string  `json:"fullname" binding:"required,min=2,max=100"`
	DOB         string  `json:"dob" binding:"required"` // YYYY-MM-DD
	Position    string  `json:"position" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=active injured loaned retired"`
	MarketValue float64 `json:"market_value" binding:"omitempty,gte=0"`
	Photo       string  `json:"photo"`
	ClubID      uint    `json:"club_id" binding:"required"`
	CountryID   uint    `json:"country_id"`
}

type UpdatePlayerRequest struct {
	Fullname    *string  `json:"fullname" binding:"omitempty,min=2,max=100"`
	Position    *string  `json:"position"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active injured loaned retired"`
	MarketValue *float64 `json:"market_value" binding:"omitempty,gte=0"`
	Photo       *string  `json:"photo"`
	ClubID      *uint    `json:"club_id"`
	CountryID   *uint    `json:"country_id"`
}

// --- Player Handlers ---

// GetAllPlayers godoc
// @Summary Get all players
// @Description Retrieves a list of players with optional filters and pagination.
// @Tags Players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param club_id query int false "Filter by club"
// @Param position query string false "Filter by position"
// @Param status query string false "Filter by status"
// @Param name query string false "Search by name (case-insensitive, partial match)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Player} "List of players"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filters := make(map[string]interface{})
	if clubIDStr := c.Query("club_id"); clubIDStr != "" {
		if clubID, err := strconv.ParseUint(clubIDStr, 10, 32); err == nil {
			filters["club_id"] = uint(clubID)
		}
	}
	if position := c.Query("position"); position != "" {
		filters["position"] = position
	}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	players, total, err := pc.repo.GetAllPlayers(page, limit, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve players: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player by ID
// @Description Retrieves details of a specific player.
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player} "Player details"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player: "+err.Error())
		return
	}
	if player == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", player)
}

// CreatePlayer godoc
// @Summary Create a new player
// @Description Registers a player with a club.
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Player} "Player created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD")
		return
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	player := Player{
		Fullname:    req.Fullname,
		DOB:         dob,
		Position:    req.Position,
		Status:      status,
		MarketValue: req.MarketValue,
		Photo:       req.Photo,
		ClubID:      req.ClubID,
		CountryID:   req.CountryID,
	}

	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", player)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Description Updates details of an existing player.
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Player Update Data"
// @Success 200 {object} responses.SuccessResponse{data=Player} "Player updated successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or player ID"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player: "+err.Error())
		return
	}
	if player == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if req.Fullname != nil {
		player.Fullname = *req.Fullname
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Status != nil {
		player.Status = *req.Status
	}
	if req.MarketValue != nil {
		player.MarketValue = *req.MarketValue
	}
	if req.Photo != nil {
		player.Photo = *req.Photo
	}
	if req.ClubID != nil {
		player.ClubID = *req.ClubID
	}
	if req.CountryID != nil {
		player.CountryID = *req.CountryID
	}

	if err := pc.repo.UpdatePlayer(player); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", player)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Deletes a player. Soft delete.
// @Tags Players
// @Produce json
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse "Player deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid player ID"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve player: "+err.Error())
		return
	}
	if player == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}

	if err := pc.repo.DeletePlayer(uint(playerID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
