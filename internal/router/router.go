package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/greenxp-api/internal/config"
	"github.com/yukikurage/greenxp-api/internal/constants"
	"github.com/yukikurage/greenxp-api/internal/handlers"
	"github.com/yukikurage/greenxp-api/internal/middleware"
	"github.com/yukikurage/greenxp-api/internal/repository"
	"github.com/yukikurage/greenxp-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine
func New(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	missionRepo := repository.NewMissionRepository(db)
	userMissionRepo := repository.NewUserMissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	missionService := services.NewMissionService(missionRepo)
	userMissionService := services.NewUserMissionService(userMissionRepo, missionRepo)
	userService := services.NewUserService(userRepo, userMissionRepo)

	missionHandler := handlers.NewMissionHandler(missionService, log)
	userMissionHandler := handlers.NewUserMissionHandler(userMissionService, log)
	userHandler := handlers.NewUserHandler(userService, log)

	requireAdmin := middleware.RequireAdmin(middleware.NewHeaderUserAuthenticator(userService), log)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		cors.New(corsConfig(cfg)),
	)

	r.GET("/", handlers.Banner)
	r.GET("/health", handlers.Health)

	// Mission catalog
	missions := r.Group("/missions")
	{
		missions.GET("", missionHandler.ListMissions)
		missions.POST("", requireAdmin, missionHandler.CreateMission)
		missions.PUT("/:id", requireAdmin, missionHandler.UpdateMission)
		missions.DELETE("/:id", requireAdmin, missionHandler.DeleteMission)

		missions.GET("/public/:userId", userMissionHandler.ListPublicMissions)
		missions.GET("/accepted/:userId", userMissionHandler.ListAcceptedMissions)
		missions.GET("/completed/:userId", userMissionHandler.ListCompletedMissions)
	}

	// Acceptance lifecycle
	userMissions := r.Group("/user_missions")
	{
		userMissions.POST("", userMissionHandler.AcceptMission)
		userMissions.PUT("/:id", userMissionHandler.UpdateUserMission)
		userMissions.DELETE("/:id", userMissionHandler.DeleteUserMission)
	}

	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id/summary", userHandler.GetSummary)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", constants.HeaderUserID, constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.CORSAllowOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.CORSAllowOrigins
	return c
}
