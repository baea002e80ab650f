package club

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/internal/player"
	"github.com/libscores/libscores/pkg/responses"
)

// ClubController handles club-related HTTP requests
type ClubController struct {
	repo       ClubRepository
	playerRepo player.PlayerRepository
	appConfig  *config.Config
}

// NewClubController creates a new club controller
func NewClubController(repo ClubRepository, playerRepo player.PlayerRepository, appConfig *config.Config) *ClubController {
	return &ClubController{
		repo:       repo,
		playerRepo: playerRepo,
		appConfig:  appConfig,
	}
}

// --- DTOs for requests ---

type CreateClubRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Badge       string  `json:"badge"`
	Founded     int     `json:"founded"`
	Squad       int     `json:"squad" binding:"omitempty,gte=0"`
	Stadium     string  `json:"stadium"`
	MarketValue float64 `json:"market_value" binding:"omitempty,gte=0"`
}

type UpdateClubRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Badge       *string  `json:"badge"`
	Founded     *int     `json:"founded"`
	Squad       *int     `json:"squad" binding:"omitempty,gte=0"`
	Stadium     *string  `json:"stadium"`
	MarketValue *float64 `json:"market_value" binding:"omitempty,gte=0"`
}

// --- Club Handlers ---

// GetAllClubs godoc
// @Summary Get all clubs
// @Description Retrieves a list of all clubs with optional name search and pagination.
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param name query string false "Search by club name (case-insensitive, partial match)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Club} "List of clubs"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs [get]
func (cc *ClubController) GetAllClubs(c *gin.Context) {
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

	clubs, total, err := cc.repo.GetAllClubs(page, limit, c.Query("name"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve clubs: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Clubs retrieved successfully", clubs, total, page, limit)
}

// SuggestClubs godoc
// @Summary Suggest clubs by name
// @Description Returns up to 10 clubs whose name matches the query, for typeahead inputs.
// @Tags Clubs
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} Suggestion "Matching clubs"
// @Failure 400 {object} responses.ErrorResponse "Missing query parameter"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs/suggest [get]
func (cc *ClubController) SuggestClubs(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		responses.SendError(c, http.StatusBadRequest, "Query parameter is required.")
		return
	}

	suggestions, err := cc.repo.SuggestClubs(q, 10)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while fetching club suggestions.")
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetClubByID godoc
// @Summary Get a club by its ID
// @Description Retrieves details of a specific club.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club} "Club details"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs/{club_id} [get]
func (cc *ClubController) GetClubByID(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// GetClubPlayers godoc
// @Summary Get all players for a club
// @Description Retrieves the club's identity along with its current players.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} map[string]interface{} "Club and its players"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs/{club_id}/players [get]
func (cc *ClubController) GetClubPlayers(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found")
		return
	}

	players, err := cc.playerRepo.GetPlayersByClubID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "An error occurred while fetching the players.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"club": gin.H{
			"id":      club.ID,
			"name":    club.Name,
			"logo":    club.Badge,
			"founded": club.Founded,
			"squad":   club.Squad,
			"stadium": club.Stadium,
		},
		"players": players,
	})
}

// CreateClub godoc
// @Summary Create a new club
// @Description Creates a new club. Club names are unique.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Club} "Club created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Club name already exists"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	existing, _ := cc.repo.FindClubByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Club name already exists")
		return
	}

	club := Club{
		Name:        req.Name,
		Badge:       req.Badge,
		Founded:     req.Founded,
		Squad:       req.Squad,
		Stadium:     req.Stadium,
		MarketValue: req.MarketValue,
	}

	if err := cc.repo.CreateClub(&club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// UpdateClub godoc
// @Summary Update a club
// @Description Updates details of an existing club.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param club body UpdateClubRequest true "Club Update Data"
// @Success 200 {object} responses.SuccessResponse{data=Club} "Club updated successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or club ID"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs/{club_id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found")
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Badge != nil {
		club.Badge = *req.Badge
	}
	if req.Founded != nil {
		club.Founded = *req.Founded
	}
	if req.Squad != nil {
		club.Squad = *req.Squad
	}
	if req.Stadium != nil {
		club.Stadium = *req.Stadium
	}
	if req.MarketValue != nil {
		club.MarketValue = *req.MarketValue
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary Delete a club
// @Description Deletes a club. Soft delete.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse "Club deleted successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid club ID"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /clubs/{club_id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil {
		responses.SendError(c, http.StatusNotFound, "Club not found")
		return
	}

	if err := cc.repo.DeleteClub(uint(clubID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}
