package db

import (
	"time"
)

// Topic is a rotation pool item: a debate prompt with its presenter.
//
// Invariants:
//   - Weight > 0 for every row (enforced on write).
//   - Disabled topics are never selected.
//   - Rows are never deleted while a RotationRecord references them.
type Topic struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	PresenterName string    `gorm:"size:128;not null" json:"presenter_name"`
	PresenterID   *string   `gorm:"size:64" json:"presenter_id,omitempty"`
	Category      string    `gorm:"size:64;not null;default:general;index" json:"category"`
	Weight        float64   `gorm:"not null" json:"weight"`
	Enabled       bool      `gorm:"not null;index" json:"enabled"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RotationRecord is the append-only history of which topic was shown on which day.
//
// Unique index on ShownDate guarantees at most one record per calendar date,
// which is what makes the daily pick safe to race.
type RotationRecord struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	TopicID   uint64    `gorm:"not null;index"`
	Topic     Topic     `gorm:"foreignKey:TopicID;constraint:OnDelete:RESTRICT"`
	ShownDate string    `gorm:"size:10;not null;uniqueIndex:idx_rotation_shown_date"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// UserStreak tracks consecutive active days and cumulative points.
//
// CurrentStreak is stored as of LastActiveDate; readers treat it as 0 once
// LastActiveDate is older than yesterday.
type UserStreak struct {
	UserID         string    `gorm:"primaryKey;size:64"`
	DisplayName    string    `gorm:"size:128"`
	CurrentStreak  int64     `gorm:"not null;default:0"`
	LongestStreak  int64     `gorm:"not null;default:0"`
	LastActiveDate *string   `gorm:"size:10"`
	TotalPoints    int64     `gorm:"not null;default:0;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// UserStats holds lifetime and current-week debate counters.
//
// Week* counters describe the ISO week starting at WeekStart only.
type UserStats struct {
	UserID       string    `gorm:"primaryKey;size:64" json:"user_id"`
	DisplayName  string    `gorm:"size:128" json:"display_name"`
	TotalDebates int64     `gorm:"not null;default:0" json:"total_debates"`
	TotalWins    int64     `gorm:"not null;default:0" json:"total_wins"`
	TotalDraws   int64     `gorm:"not null;default:0" json:"total_draws"`
	TotalLosses  int64     `gorm:"not null;default:0" json:"total_losses"`
	TotalScore   float64   `gorm:"not null;default:0" json:"total_score"`
	WeekStart    string    `gorm:"size:10;not null;index" json:"week_start"`
	WeekDebates  int64     `gorm:"not null;default:0" json:"week_debates"`
	WeekWins     int64     `gorm:"not null;default:0" json:"week_wins"`
	WeekDraws    int64     `gorm:"not null;default:0" json:"week_draws"`
	WeekLosses   int64     `gorm:"not null;default:0" json:"week_losses"`
	WeekScore    float64   `gorm:"not null;default:0" json:"week_score"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Profile is the optional public identity joined into leaderboards.
type Profile struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"user_id"`
	Handle    string    `gorm:"size:64;not null;uniqueIndex" json:"handle"`
	AvatarURL string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Models lists every table owned by the engagement engine, in migration order.
func Models() []any {
	return []any{&Topic{}, &RotationRecord{}, &UserStreak{}, &UserStats{}, &Profile{}}
}
