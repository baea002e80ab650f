package standing

import (
	"errors"

	"gorm.io/gorm"
)

type StandingRepository interface {
	CreateStanding(standing *Standing) error
	GetStandingByID(id uint) (*Standing, error)
	GetStanding(seasonID, clubID uint) (*Standing, error)
	GetSeasonTable(seasonID uint) ([]Standing, error)
	UpdateStanding(standing *Standing) error
	DeleteStanding(id uint) error
}

type standingRepository struct {
	db *gorm.DB
}

func NewStandingRepository(db *gorm.DB) StandingRepository {
	return &standingRepository{db: db}
}

func (r *standingRepository) CreateStanding(standing *Standing) error {
	return r.db.Create(standing).Error
}

func (r *standingRepository) GetStandingByID(id uint) (*Standing, error) {
	var standing Standing
	err := r.db.Preload("Club").First(&standing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &standing, nil
}

func (r *standingRepository) GetStanding(seasonID, clubID uint) (*Standing, error) {
	var standing Standing
	err := r.db.Where("season_id = ? AND club_id = ?", seasonID, clubID).First(&standing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &standing, nil
}

// GetSeasonTable returns the season's table ordered by points, then goal
// difference, then goals scored.
func (r *standingRepository) GetSeasonTable(seasonID uint) ([]Standing, error) {
	var standings []Standing
	err := r.db.Preload("Club").
		Where("season_id = ?", seasonID).
		Order("points DESC").
		Order("(goals_for - goals_against) DESC").
		Order("goals_for DESC").
		Find(&standings).Error
	return standings, err
}

func (r *standingRepository) UpdateStanding(standing *Standing) error {
	return r.db.Save(standing).Error
}

func (r *standingRepository) DeleteStanding(id uint) error {
	return r.db.Delete(&Standing{}, id).Error
}
