package player

import (
	"errors"

	"gorm.io/gorm"
)

type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(page, pageSize int, filters map[string]interface{}) ([]Player, int64, error)
	GetPlayersByClubID(clubID uint) ([]Player, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	err := r.db.First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAllPlayers(page, pageSize int, filters map[string]interface{}) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}
	if position, ok := filters["position"]; ok {
		query = query.Where("position = ?", position)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("fullname ILIKE ?", "%"+name.(string)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("fullname ASC").Offset(offset).Limit(pageSize).Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) GetPlayersByClubID(clubID uint) ([]Player, error) {
	var players []Player
	err := r.db.Where("club_id = ?", clubID).Order("fullname ASC").Find(&players).Error
	return players, err
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
