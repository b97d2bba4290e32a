package services

import (
	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"github.com/yukikurage/greenxp-api/internal/repository"
)

var (
	ErrUserMissionIDsRequired = errors.New("user_id and mission_id required")
	ErrMissionAlreadyAccepted = errors.New("mission already accepted by this user")
)

// UserMissionService drives the accept / complete / abandon lifecycle
type UserMissionService struct {
	userMissionRepo repository.UserMissionRepository
	missionRepo     repository.MissionRepository
}

// NewUserMissionService creates a new UserMissionService
func NewUserMissionService(userMissionRepo repository.UserMissionRepository, missionRepo repository.MissionRepository) *UserMissionService {
	return &UserMissionService{
		userMissionRepo: userMissionRepo,
		missionRepo:     missionRepo,
	}
}

// AcceptMissionInput represents input for accepting a mission
type AcceptMissionInput struct {
	UserID    uint64
	MissionID uint64
}

// Accept creates an open acceptance record for the pair
func (s *UserMissionService) Accept(input AcceptMissionInput) (*models.UserMission, error) {
	if input.UserID == 0 || input.MissionID == 0 {
		return nil, ErrUserMissionIDsRequired
	}

	userMission := &models.UserMission{
		UserID:    input.UserID,
		MissionID: input.MissionID,
	}

	created, err := s.userMissionRepo.Create(userMission)
	if err != nil {
		return nil, errors.Wrap(err, "failed to accept mission")
	}
	if !created {
		return nil, ErrMissionAlreadyAccepted
	}

	return userMission, nil
}

// SetCompleted marks an acceptance record completed or reopens it.
// An unknown id is a silent no-op.
func (s *UserMissionService) SetCompleted(id uint64, completed bool) error {
	if err := s.userMissionRepo.SetCompleted(id, completed); err != nil {
		return errors.Wrap(err, "failed to update user mission")
	}
	return nil
}

// Abandon deletes an acceptance record. An unknown id is a silent no-op.
func (s *UserMissionService) Abandon(id uint64) error {
	if err := s.userMissionRepo.Delete(id); err != nil {
		return errors.Wrap(err, "failed to remove user mission")
	}
	return nil
}

// ListPublic returns missions the user can still accept
func (s *UserMissionService) ListPublic(userID uint64) ([]models.Mission, error) {
	missions, err := s.missionRepo.ListPublic(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public missions")
	}
	return missions, nil
}

// ListAccepted returns missions the user accepted and has not completed
func (s *UserMissionService) ListAccepted(userID uint64) ([]models.AcceptedMission, error) {
	return s.listByStatus(userID, false)
}

// ListCompleted returns missions the user completed
func (s *UserMissionService) ListCompleted(userID uint64) ([]models.AcceptedMission, error) {
	return s.listByStatus(userID, true)
}

func (s *UserMissionService) listByStatus(userID uint64, completed bool) ([]models.AcceptedMission, error) {
	rows, err := s.userMissionRepo.ListByStatus(userID, completed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user missions")
	}
	return rows, nil
}
