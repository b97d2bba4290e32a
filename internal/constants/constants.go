package constants

const (
	// HeaderUserID carries the caller's user id for admin-only routes.
	HeaderUserID = "x-user-id"
	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"

	ContextKeyUser      = "user"
	ContextKeyRequestID = "request_id"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	DefaultDifficulty = DifficultyEasy
)

// DifficultyXP maps each known difficulty tier to its fixed XP reward.
var DifficultyXP = map[string]int{
	DifficultyEasy:   10,
	DifficultyMedium: 25,
	DifficultyHard:   50,
}
