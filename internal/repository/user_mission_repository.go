package repository

import (
	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserMissionRepository is a GORM implementation of UserMissionRepository
type GormUserMissionRepository struct {
	db *gorm.DB
}

// NewUserMissionRepository creates a new UserMissionRepository
func NewUserMissionRepository(db *gorm.DB) UserMissionRepository {
	return &GormUserMissionRepository{db: db}
}

// Create inserts the acceptance record in a single conditional statement so
// two concurrent requests for the same pair cannot both succeed.
func (r *GormUserMissionRepository) Create(userMission *models.UserMission) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "mission_id"}},
			DoNothing: true,
		}).
		Create(userMission)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "create user mission")
	}
	return result.RowsAffected > 0, nil
}

// SetCompleted sets the completed flag on an acceptance record
func (r *GormUserMissionRepository) SetCompleted(id uint64, completed bool) error {
	err := r.db.Model(&models.UserMission{}).
		Where("id = ?", id).
		Update("completed", completed).Error
	if err != nil {
		return errors.Wrap(err, "update user mission")
	}
	return nil
}

// Delete removes an acceptance record
func (r *GormUserMissionRepository) Delete(id uint64) error {
	if err := r.db.Delete(&models.UserMission{}, id).Error; err != nil {
		return errors.Wrap(err, "delete user mission")
	}
	return nil
}

// ListByStatus joins the user's acceptance records to their missions
func (r *GormUserMissionRepository) ListByStatus(userID uint64, completed bool) ([]models.AcceptedMission, error) {
	rows := []models.AcceptedMission{}
	err := joinedMissions(r.db, userID, completed).
		Select("user_missions.id AS user_mission_id, missions.id, missions.title, missions.category, missions.difficulty, missions.xp, user_missions.completed").
		Order("user_missions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list user missions")
	}
	return rows, nil
}

// Summary computes the dashboard figures inside one read transaction
func (r *GormUserMissionRepository) Summary(userID uint64) (*UserSummary, error) {
	var summary UserSummary
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := joinedMissions(tx, userID, true).
			Select("COALESCE(SUM(missions.xp), 0)").
			Scan(&summary.TotalXP).Error; err != nil {
			return errors.Wrap(err, "sum xp")
		}

		if err := tx.Model(&models.Mission{}).
			Where("id NOT IN (?)", acceptedMissionIDs(tx, userID)).
			Count(&summary.Public).Error; err != nil {
			return errors.Wrap(err, "count public")
		}

		if err := joinedMissions(tx, userID, false).Count(&summary.Accepted).Error; err != nil {
			return errors.Wrap(err, "count accepted")
		}

		if err := joinedMissions(tx, userID, true).Count(&summary.Completed).Error; err != nil {
			return errors.Wrap(err, "count completed")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "user summary")
	}
	return &summary, nil
}

// joinedMissions restricts to the user's acceptance records that still point at
// an existing mission
func joinedMissions(db *gorm.DB, userID uint64, completed bool) *gorm.DB {
	return db.Model(&models.UserMission{}).
		Joins("JOIN missions ON missions.id = user_missions.mission_id").
		Where("user_missions.user_id = ? AND user_missions.completed = ?", userID, completed)
}
