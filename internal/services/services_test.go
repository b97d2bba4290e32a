package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/greenxp-api/internal/database"
	"github.com/yukikurage/greenxp-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db                 *gorm.DB
	missionService     *MissionService
	userMissionService *UserMissionService
	userService        *UserService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	missionRepo := repository.NewMissionRepository(db)
	userMissionRepo := repository.NewUserMissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	return serviceTestEnv{
		db:                 db,
		missionService:     NewMissionService(missionRepo),
		userMissionService: NewUserMissionService(userMissionRepo, missionRepo),
		userService:        NewUserService(userRepo, userMissionRepo),
	}
}

func ptr[T any](v T) *T {
	return &v
}
