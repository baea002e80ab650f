package activity

import (
	"errors"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	CreateActivity(activity *Activity) error
	GetActivityByID(id uint) (*Activity, error)
	UpdateActivity(activity *Activity) error
	GetActivitiesByGame(gameID uint) ([]Activity, error)
}

// GormActivityRepository implements ActivityRepository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new GormActivityRepository
func NewActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) CreateActivity(activity *Activity) error {
	return r.db.Create(activity).Error
}

func (r *GormActivityRepository) GetActivityByID(id uint) (*Activity, error) {
	var activity Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *GormActivityRepository) UpdateActivity(activity *Activity) error {
	return r.db.Save(activity).Error
}

func (r *GormActivityRepository) GetActivitiesByGame(gameID uint) ([]Activity, error) {
	var activities []Activity
	err := r.db.Where("game_id = ?", gameID).Order("minutes ASC").Find(&activities).Error
	return activities, err
}
