package models

import "time"

// UserMission records that a user accepted a mission. There are no foreign
// keys: deleting a mission leaves its acceptance rows in place.
type UserMission struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_missions_user_mission" json:"user_id"`
	MissionID uint64    `gorm:"not null;uniqueIndex:idx_user_missions_user_mission" json:"mission_id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AcceptedMission is a mission joined to one of a user's acceptance records.
// It is a query result, not a table.
type AcceptedMission struct {
	UserMissionID uint64
	ID            uint64
	Title         string
	Category      *string
	Difficulty    string
	XP            int `gorm:"column:xp"`
	Completed     bool
}
