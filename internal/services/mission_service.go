package services

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/constants"
	"github.com/yukikurage/greenxp-api/internal/models"
	"github.com/yukikurage/greenxp-api/internal/repository"
)

var (
	ErrTitleRequired    = errors.New("title required")
	ErrTitleEmpty       = errors.New("title cannot be empty")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrMissionNotFound  = errors.New("mission not found")
)

// MissionService manages the mission catalog
type MissionService struct {
	missionRepo repository.MissionRepository
}

// NewMissionService creates a new MissionService
func NewMissionService(missionRepo repository.MissionRepository) *MissionService {
	return &MissionService{
		missionRepo: missionRepo,
	}
}

// CreateMissionInput represents input for creating a mission
type CreateMissionInput struct {
	Title      string
	Category   *string
	Difficulty *string
	XP         *int
}

// UpdateMissionInput represents a partial mission update; nil fields are left
// unchanged. ClearCategory sets the category to NULL.
type UpdateMissionInput struct {
	Title         *string
	Category      *string
	ClearCategory bool
	Difficulty    *string
	XP            *int
}

// ResolveXP returns the reward for a mission. A known difficulty always wins
// over the supplied xp; otherwise the supplied xp is used, defaulting to 0.
func ResolveXP(difficulty string, xp *int) int {
	if reward, ok := constants.DifficultyXP[difficulty]; ok {
		return reward
	}
	if xp != nil {
		return *xp
	}
	return 0
}

// ListMissions returns the whole catalog ordered by id
func (s *MissionService) ListMissions() ([]models.Mission, error) {
	missions, err := s.missionRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list missions")
	}
	return missions, nil
}

// CreateMission validates and stores a new mission
func (s *MissionService) CreateMission(input CreateMissionInput) (*models.Mission, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	var difficulty string
	if input.Difficulty != nil {
		difficulty = *input.Difficulty
	}
	xp := ResolveXP(difficulty, input.XP)
	if difficulty == "" {
		difficulty = constants.DefaultDifficulty
	}

	category := input.Category
	if category != nil && *category == "" {
		category = nil
	}

	mission := &models.Mission{
		Title:      title,
		Category:   category,
		Difficulty: difficulty,
		XP:         xp,
	}

	if err := s.missionRepo.Create(mission); err != nil {
		return nil, errors.Wrap(err, "failed to create mission")
	}

	return mission, nil
}

// UpdateMission applies the supplied fields to a mission
func (s *MissionService) UpdateMission(id uint64, input UpdateMissionInput) error {
	fields := map[string]interface{}{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return ErrTitleEmpty
		}
		fields["title"] = title
	}
	if input.ClearCategory {
		fields["category"] = nil
	} else if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Difficulty != nil {
		fields["difficulty"] = *input.Difficulty
		fields["xp"] = ResolveXP(*input.Difficulty, input.XP)
	} else if input.XP != nil {
		fields["xp"] = *input.XP
	}

	if len(fields) == 0 {
		return ErrNoFieldsToUpdate
	}

	affected, err := s.missionRepo.Update(id, fields)
	if err != nil {
		return errors.Wrap(err, "failed to update mission")
	}
	if affected == 0 {
		return ErrMissionNotFound
	}

	return nil
}

// DeleteMission removes a mission. Acceptance records pointing at it are kept.
func (s *MissionService) DeleteMission(id uint64) error {
	affected, err := s.missionRepo.Delete(id)
	if err != nil {
		return errors.Wrap(err, "failed to delete mission")
	}
	if affected == 0 {
		return ErrMissionNotFound
	}
	return nil
}
