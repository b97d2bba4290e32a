package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/greenxp-api/internal/dto"
	apierrors "github.com/yukikurage/greenxp-api/internal/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"github.com/yukikurage/greenxp-api/internal/services"
	"go.uber.org/zap"
)

// UserMissionHandler serves mission acceptance and the per-user mission lists
type UserMissionHandler struct {
	userMissionService *services.UserMissionService
	log                *zap.Logger
}

// NewUserMissionHandler creates a new UserMissionHandler
func NewUserMissionHandler(userMissionService *services.UserMissionService, log *zap.Logger) *UserMissionHandler {
	return &UserMissionHandler{
		userMissionService: userMissionService,
		log:                log,
	}
}

// AcceptMission records that a user accepted a mission
func (h *UserMissionHandler) AcceptMission(c *gin.Context) {
	type AcceptMissionRequest struct {
		UserID    uint64 `json:"user_id"`
		MissionID uint64 `json:"mission_id"`
	}

	var req AcceptMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	userMission, err := h.userMissionService.Accept(services.AcceptMissionInput{
		UserID:    req.UserID,
		MissionID: req.MissionID,
	})
	if err != nil {
		h.respondUserMissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Mission accepted!",
		"id":      userMission.ID,
	})
}

// UpdateUserMission sets or clears the completed flag
func (h *UserMissionHandler) UpdateUserMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateUserMissionRequest struct {
		Completed bool `json:"completed"`
	}

	// an empty body clears the flag
	var req UpdateUserMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if err := h.userMissionService.SetCompleted(id, req.Completed); err != nil {
		h.respondUserMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User mission %d updated.", id),
	})
}

// DeleteUserMission abandons an accepted mission
func (h *UserMissionHandler) DeleteUserMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userMissionService.Abandon(id); err != nil {
		h.respondUserMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User mission %d removed.", id),
	})
}

// ListPublicMissions returns missions the user has not accepted
func (h *UserMissionHandler) ListPublicMissions(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	missions, err := h.userMissionService.ListPublic(userID)
	if err != nil {
		h.respondUserMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMissionDTOs(missions))
}

// ListAcceptedMissions returns the user's open missions
func (h *UserMissionHandler) ListAcceptedMissions(c *gin.Context) {
	h.listByStatus(c, h.userMissionService.ListAccepted)
}

// ListCompletedMissions returns the user's completed missions
func (h *UserMissionHandler) ListCompletedMissions(c *gin.Context) {
	h.listByStatus(c, h.userMissionService.ListCompleted)
}

func (h *UserMissionHandler) listByStatus(c *gin.Context, list func(uint64) ([]models.AcceptedMission, error)) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	rows, err := list(userID)
	if err != nil {
		h.respondUserMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAcceptedMissionDTOs(rows))
}

func (h *UserMissionHandler) respondUserMissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserMissionIDsRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMissionAlreadyAccepted):
		apierrors.Conflict(c, "Mission already accepted by this user")
	default:
		h.log.Error("user mission request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.InternalError(c, err.Error())
	}
}
