package club

import (
	"errors"

	"gorm.io/gorm"
)

type ClubRepository interface {
	CreateClub(club *Club) error
	GetClubByID(id uint) (*Club, error)
	GetAllClubs(page, pageSize int, searchTerm string) ([]Club, int64, error)
	UpdateClub(club *Club) error
	DeleteClub(id uint) error
	FindClubByName(name string) (*Club, error)
	SuggestClubs(query string, limit int) ([]Suggestion, error)
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new instance of ClubRepository.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(club *Club) error {
	return r.db.Create(club).Error
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var club Club
	err := r.db.First(&club, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Convention: (nil, nil) when the record does not exist
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetAllClubs(page, pageSize int, searchTerm string) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{})
	if searchTerm != "" {
		query = query.Where("name ILIKE ?", "%"+searchTerm+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) UpdateClub(club *Club) error {
	return r.db.Save(club).Error
}

func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Delete(&Club{}, id).Error
}

func (r *clubRepository) FindClubByName(name string) (*Club, error) {
	var club Club
	err := r.db.Where("name = ?", name).First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) SuggestClubs(query string, limit int) ([]Suggestion, error) {
	var suggestions []Suggestion
	err := r.db.Model(&Club{}).
		Select("id", "name").
		Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&suggestions).Error
	return suggestions, err
}
