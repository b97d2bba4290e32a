package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/greenxp-api/internal/dto"
	apierrors "github.com/yukikurage/greenxp-api/internal/errors"
	"github.com/yukikurage/greenxp-api/internal/middleware"
	"github.com/yukikurage/greenxp-api/internal/services"
	"go.uber.org/zap"
)

// MissionHandler serves the mission catalog
type MissionHandler struct {
	missionService *services.MissionService
	log            *zap.Logger
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(missionService *services.MissionService, log *zap.Logger) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
		log:            log,
	}
}

// ListMissions returns every mission ordered by id
func (h *MissionHandler) ListMissions(c *gin.Context) {
	missions, err := h.missionService.ListMissions()
	if err != nil {
		h.respondMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMissionDTOs(missions))
}

// CreateMission adds a mission to the catalog (admin only)
func (h *MissionHandler) CreateMission(c *gin.Context) {
	type CreateMissionRequest struct {
		Title      string  `json:"title"`
		Category   *string `json:"category"`
		Difficulty *string `json:"difficulty"`
		XP         *int    `json:"xp"`
	}

	var req CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	mission, err := h.missionService.CreateMission(services.CreateMissionInput{
		Title:      req.Title,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		XP:         req.XP,
	})
	if err != nil {
		h.respondMissionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Mission %q added.", mission.Title),
		"id":      mission.ID,
	})
}

// UpdateMission applies a partial update (admin only)
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateMissionRequest struct {
		Title      optional[string] `json:"title"`
		Category   optional[string] `json:"category"`
		Difficulty optional[string] `json:"difficulty"`
		XP         optional[int]    `json:"xp"`
	}

	var req UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.UpdateMissionInput{
		Category:      req.Category.Value,
		ClearCategory: req.Category.Set && req.Category.Value == nil,
		Difficulty:    req.Difficulty.Value,
		XP:            req.XP.Value,
	}
	if req.Title.Set {
		// a null title is as invalid as a blank one
		input.Title = req.Title.Value
		if input.Title == nil {
			input.Title = new(string)
		}
	}
	if req.Difficulty.Set && req.Difficulty.Value == nil {
		apierrors.BadRequest(c, "difficulty cannot be null")
		return
	}
	if req.XP.Set && req.XP.Value == nil {
		input.XP = new(int)
	}

	err := h.missionService.UpdateMission(id, input)
	if err != nil {
		h.respondMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Mission %d updated.", id),
	})
}

// DeleteMission removes a mission (admin only)
func (h *MissionHandler) DeleteMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.missionService.DeleteMission(id); err != nil {
		h.respondMissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Mission %d deleted.", id),
	})
}

func (h *MissionHandler) respondMissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrNoFieldsToUpdate):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMissionNotFound):
		apierrors.NotFound(c, "Mission not found")
	default:
		fields := []zap.Field{zap.String("path", c.FullPath()), zap.Error(err)}
		if admin, ok := middleware.GetUser(c); ok {
			fields = append(fields, zap.Uint64("admin_id", admin.ID))
		}
		h.log.Error("mission request failed", fields...)
		apierrors.InternalError(c, err.Error())
	}
}
