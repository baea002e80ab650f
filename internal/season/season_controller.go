package season

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libscores/libscores/config"
	"github.com/libscores/libscores/pkg/responses"
)

type SeasonController struct {
	repo      SeasonRepository
	appConfig *config.Config
}

func NewSeasonController(repo SeasonRepository, appConfig *config.Config) *SeasonController {
	return &SeasonController{repo: repo, appConfig: appConfig}
}

type CreateSeasonRequest struct {
	CompetitionID uint   `json:"competition_id" binding:"required"`
	Start         string `json:"start" binding:"required"` // YYYY-MM-DD
	End           string `json:"end" binding:"required"`   // YYYY-MM-DD
	Teams         int    `json:"teams" binding:"omitempty,gte=2"`
	Status        string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
}

type UpdateSeasonRequest struct {
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Teams  *int    `json:"teams" binding:"omitempty,gte=2"`
	Status *string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed"`
}

// GetAllSeasons godoc
// @Summary Get all seasons
// @Tags Seasons
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status"
// @Success 200 {object} responses.PaginatedResponse{data=[]Season}
// @Router /seasons [get]
func (sc *SeasonController) GetAllSeasons(c *gin.Context) {
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

	seasons, total, err := sc.repo.GetAllSeasons(page, limit, c.Query("status"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve seasons: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Seasons retrieved successfully", seasons, total, page, limit)
}

// GetSeasonByID godoc
// @Summary Get a season by ID
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse{data=Season}
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Router /seasons/{season_id} [get]
func (sc *SeasonController) GetSeasonByID(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	season, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve season: "+err.Error())
		return
	}
	if season == nil {
		responses.SendError(c, http.StatusNotFound, "Season not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season retrieved successfully", season)
}

// CreateSeason godoc
// @Summary Create a season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season body CreateSeasonRequest true "Season Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Season}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Router /seasons [post]
func (sc *SeasonController) CreateSeason(c *gin.Context) {
	var req CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		responses.SendError(c, http.StatusBadRequest, "Season end cannot be before its start")
		return
	}

	status := SeasonStatus(req.Status)
	if status == "" {
		status = StatusUpcoming
	}

	season := Season{
		CompetitionID: req.CompetitionID,
		Start:         start,
		End:           end,
		Teams:         req.Teams,
		Status:        status,
	}

	if err := sc.repo.CreateSeason(&season); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Season created successfully", season)
}

// UpdateSeason godoc
// @Summary Update a season
// @Tags Seasons
// @Accept json
// @Produce json
// @Param season_id path uint true "Season ID"
// @Param season body UpdateSeasonRequest true "Season Update Data"
// @Success 200 {object} responses.SuccessResponse{data=Season}
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Router /seasons/{season_id} [put]
func (sc *SeasonController) UpdateSeason(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	season, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve season: "+err.Error())
		return
	}
	if season == nil {
		responses.SendError(c, http.StatusNotFound, "Season not found")
		return
	}

	var req UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if req.Start != nil {
		start, err := time.Parse("2006-01-02", *req.Start)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		season.Start = start
	}
	if req.End != nil {
		end, err := time.Parse("2006-01-02", *req.End)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		season.End = end
	}
	if req.Teams != nil {
		season.Teams = *req.Teams
	}
	if req.Status != nil {
		season.Status = SeasonStatus(*req.Status)
	}

	if err := sc.repo.UpdateSeason(season); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season updated successfully", season)
}

// DeleteSeason godoc
// @Summary Delete a season
// @Tags Seasons
// @Produce json
// @Param season_id path uint true "Season ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Season not found"
// @Router /seasons/{season_id} [delete]
func (sc *SeasonController) DeleteSeason(c *gin.Context) {
	seasonID, err := strconv.ParseUint(c.Param("season_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid season ID")
		return
	}

	season, err := sc.repo.GetSeasonByID(uint(seasonID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve season: "+err.Error())
		return
	}
	if season == nil {
		responses.SendError(c, http.StatusNotFound, "Season not found")
		return
	}

	if err := sc.repo.DeleteSeason(uint(seasonID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete season: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Season deleted successfully", nil)
}
