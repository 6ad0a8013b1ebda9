package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// StatsRepository stores lifetime and weekly debate counters.
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new repository bound to the given DB connection.
func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{db: database}
}

// Get returns the stored row as-is, or nil for an unknown user.
func (r *StatsRepository) Get(ctx context.Context, userID string) (*db.UserStats, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	done := metrics.ObserveDB(metrics.DBOpGetStats)
	var s db.UserStats
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
func (r *StatsRepository) Create(ctx context.Context, s *db.UserStats) error {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpCreateStats)
	err = conn.Create(s).Error
	done(ignoreConflict(err))
	return asConflict(err)
}

// Update overwrites every counter of an existing row.
func (r *StatsRepository) Update(ctx context.Context, s *db.UserStats) error {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return err
	}

	done := metrics.ObserveDB(metrics.DBOpUpdateStats)
	err = conn.Model(&db.UserStats{}).Where("user_id = ?", s.UserID).Updates(map[string]any{
		"display_name":  s.DisplayName,
		"total_debates": s.TotalDebates,
		"total_wins":    s.TotalWins,
		"total_draws":   s.TotalDraws,
		"total_losses":  s.TotalLosses,
		"total_score":   s.TotalScore,
		"week_start":    s.WeekStart,
		"week_debates":  s.WeekDebates,
		"week_wins":     s.WeekWins,
		"week_draws":    s.WeekDraws,
		"week_losses":   s.WeekLosses,
		"week_score":    s.WeekScore,
	}).Error
	done(err)
	return err
}
