package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// StreakRepository stores per-user streak and points state.
type StreakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new repository bound to the given DB connection.
func NewStreakRepository(database *gorm.DB) *StreakRepository {
	return &StreakRepository{db: database}
}

// Get returns the stored row as-is (no staleness adjustment), or nil for an unknown user.
func (r *StreakRepository) Get(ctx context.Context, userID string) (*db.UserStreak, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpGetStreak)
	var s db.UserStreak
	err = conn.Where("user_id = ?", userID).Take(&s).Error
	done(ignoreNotFound(err))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the first row for a user. A concurrent first insert loses with ErrWriteConflict.
func (r *StreakRepository) Create(ctx context.Context, s *db.UserStreak) error {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpCreateStreak)
	err = conn.Create(s).Error
	done(ignoreConflict(err))
	return asConflict(err)
}

// Update overwrites every mutable column of an existing row.
func (r *StreakRepository) Update(ctx context.Context, s *db.UserStreak) error {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpUpdateStreak)
	err = conn.Model(&db.UserStreak{}).Where("user_id = ?", s.UserID).Updates(map[string]any{
		"display_name":     s.DisplayName,
		"current_streak":   s.CurrentStreak,
		"longest_streak":   s.LongestStreak,
		"last_active_date": s.LastActiveDate,
		"total_points":     s.TotalPoints,
	}).Error
	done(err)
	return err
}
