package dto

import "github.com/yukikurage/greenxp-api/internal/models"

// MissionDTO represents a mission in API responses
type MissionDTO struct {
	ID         uint64  `json:"id"`
	Title      string  `json:"title"`
	Category   *string `json:"category"`
	Difficulty string  `json:"difficulty"`
	XP         int     `json:"xp"`
}

// AcceptedMissionDTO is a mission joined to one of the user's acceptance records
type AcceptedMissionDTO struct {
	UserMissionID uint64 `json:"user_mission_id"`
	MissionDTO
	Completed bool `json:"completed"`
}

// ToMissionDTO converts a Mission model to MissionDTO
func ToMissionDTO(m models.Mission) MissionDTO {
	return MissionDTO{
		ID:         m.ID,
		Title:      m.Title,
		Category:   m.Category,
		Difficulty: m.Difficulty,
		XP:         m.XP,
	}
}

// ToMissionDTOs converts a slice of missions, never returning nil
func ToMissionDTOs(missions []models.Mission) []MissionDTO {
	items := make([]MissionDTO, len(missions))
	for i, m := range missions {
		items[i] = ToMissionDTO(m)
	}
	return items
}

// ToAcceptedMissionDTOs converts joined rows, never returning nil
func ToAcceptedMissionDTOs(rows []models.AcceptedMission) []AcceptedMissionDTO {
	items := make([]AcceptedMissionDTO, len(rows))
	for i, r := range rows {
		items[i] = AcceptedMissionDTO{
			UserMissionID: r.UserMissionID,
			MissionDTO: MissionDTO{
				ID:         r.ID,
				Title:      r.Title,
				Category:   r.Category,
				Difficulty: r.Difficulty,
				XP:         r.XP,
			},
			Completed: r.Completed,
		}
	}
	return items
}
