package repository

import (
	"github.com/yukikurage/greenxp-api/internal/models"
)

// MissionRepository defines the interface for mission data access
type MissionRepository interface {
	// List returns every mission ordered by id
	List() ([]models.Mission, error)

	// Create inserts a new mission and fills in its ID
	Create(mission *models.Mission) error

	// Update applies the given column values and returns the number of rows matched
	Update(id uint64, fields map[string]interface{}) (int64, error)

	// Delete removes a mission and returns the number of rows deleted
	Delete(id uint64) (int64, error)

	// ListPublic returns missions the user has not accepted yet
	ListPublic(userID uint64) ([]models.Mission, error)
}

// UserMissionRepository defines the interface for acceptance record data access
type UserMissionRepository interface {
	// Create inserts the record unless the (user, mission) pair already exists.
	// It reports false without error when the pair was already present.
	Create(userMission *models.UserMission) (bool, error)

	// SetCompleted sets the completed flag. Unknown ids are not an error.
	SetCompleted(id uint64, completed bool) error

	// Delete removes the record. Unknown ids are not an error.
	Delete(id uint64) error

	// ListByStatus returns the user's accepted missions with the given completed flag
	ListByStatus(userID uint64, completed bool) ([]models.AcceptedMission, error)

	// Summary aggregates XP and mission partition counts for a user
	Summary(userID uint64) (*UserSummary, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// List returns every user ordered by id
	List() ([]models.User, error)
}

// UserSummary holds the figures behind a user's dashboard
type UserSummary struct {
	TotalXP   int64
	Public    int64
	Accepted  int64
	Completed int64
}
