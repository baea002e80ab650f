package season

import (
	"errors"

	"gorm.io/gorm"
)

type SeasonRepository interface {
	CreateSeason(season *Season) error
	GetSeasonByID(id uint) (*Season, error)
	GetAllSeasons(page, pageSize int, status string) ([]Season, int64, error)
	UpdateSeason(season *Season) error
	DeleteSeason(id uint) error
}

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) CreateSeason(season *Season) error {
	return r.db.Create(season).Error
}

func (r *seasonRepository) GetSeasonByID(id uint) (*Season, error) {
	var season Season
	err := r.db.First(&season, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepository) GetAllSeasons(page, pageSize int, status string) ([]Season, int64, error) {
	var seasons []Season
	var total int64

	query := r.db.Model(&Season{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("start DESC").Offset(offset).Limit(pageSize).Find(&seasons).Error; err != nil {
		return nil, 0, err
	}
	return seasons, total, nil
}

func (r *seasonRepository) UpdateSeason(season *Season) error {
	return r.db.Save(season).Error
}

func (r *seasonRepository) DeleteSeason(id uint) error {
	return r.db.Delete(&Season{}, id).Error
}
