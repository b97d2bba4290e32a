package repository

import (
	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"gorm.io/gorm"
)

// GormMissionRepository is a GORM implementation of MissionRepository
type GormMissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *gorm.DB) MissionRepository {
	return &GormMissionRepository{db: db}
}

// List returns every mission ordered by id
func (r *GormMissionRepository) List() ([]models.Mission, error) {
	var missions []models.Mission
	if err := r.db.Order("id ASC").Find(&missions).Error; err != nil {
		return nil, errors.Wrap(err, "list missions")
	}
	return missions, nil
}

// Create inserts a new mission
func (r *GormMissionRepository) Create(mission *models.Mission) error {
	if err := r.db.Create(mission).Error; err != nil {
		return errors.Wrap(err, "create mission")
	}
	return nil
}

// Update applies a partial update to a mission
func (r *GormMissionRepository) Update(id uint64, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Mission{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "update mission")
	}
	return result.RowsAffected, nil
}

// Delete removes a mission; acceptance records are left in place
func (r *GormMissionRepository) Delete(id uint64) (int64, error) {
	result := r.db.Delete(&models.Mission{}, id)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete mission")
	}
	return result.RowsAffected, nil
}

// ListPublic returns missions with no acceptance record for the user
func (r *GormMissionRepository) ListPublic(userID uint64) ([]models.Mission, error) {
	var missions []models.Mission
	if err := r.db.
		Where("id NOT IN (?)", acceptedMissionIDs(r.db, userID)).
		Order("id ASC").
		Find(&missions).Error; err != nil {
		return nil, errors.Wrap(err, "list public missions")
	}
	return missions, nil
}

// acceptedMissionIDs is a subquery selecting every mission id the user has accepted
func acceptedMissionIDs(db *gorm.DB, userID uint64) *gorm.DB {
	return db.Model(&models.UserMission{}).
		Select("mission_id").
		Where("user_id = ?", userID)
}
