package dto

import "github.com/yukikurage/greenxp-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// SummaryCounts partitions the mission catalog from one user's point of view
type SummaryCounts struct {
	Public    int64 `json:"public"`
	Accepted  int64 `json:"accepted"`
	Completed int64 `json:"completed"`
}

// SummaryDTO is the per-user XP dashboard
type SummaryDTO struct {
	TotalXP int64         `json:"total_xp"`
	Counts  SummaryCounts `json:"counts"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToUserDTOs converts a slice of users, never returning nil
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, u := range users {
		items[i] = ToUserDTO(u)
	}
	return items
}
