// Package streak tracks consecutive active days and engagement points.
//
// A user's streak advances at most once per UTC calendar day, on the first
// scored debate of that day. Nothing decays in the background: a streak whose
// last active day is older than yesterday is reported as 0 by readers and is
// only rewritten on the user's next completion.
package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
	"github.com/colegottdank/debateai-engagement/internal/repository"
)

// StatsRecorder receives every completion after the streak is stored.
type StatsRecorder interface {
	ApplyCompletion(ctx context.Context, c Completion) error
}

// Options tunes a Tracker. Zero values take the defaults; a nil Points
// means DefaultPoints, while a zero Points turns awards off.
type Options struct {
	Points *Points
	Clock  clock.Clock
	Logger *slog.Logger
}

// Result is what a completion earned and where the user now stands.
type Result struct {
	PointsEarned  int64 `json:"points_earned"`
	CurrentStreak int64 `json:"current_streak"`
	LongestStreak int64 `json:"longest_streak"`
	TotalPoints   int64 `json:"total_points"`
}

// State is a user's streak as seen at read time.
type State struct {
	UserID         string `json:"user_id"`
	DisplayName    string `json:"display_name,omitempty"`
	CurrentStreak  int64  `json:"current_streak"`
	LongestStreak  int64  `json:"longest_streak"`
	TotalPoints    int64  `json:"total_points"`
	LastActiveDate string `json:"last_active_date,omitempty"`
}

// Tracker is the Streak Tracker.
type Tracker struct {
	repo   *repository.StreakRepository
	stats  StatsRecorder
	points Points
	clock  clock.Clock
	log    *slog.Logger
}

// NewTracker wires a tracker. stats may be nil.
func NewTracker(repo *repository.StreakRepository, stats StatsRecorder, opts Options) *Tracker {
	t := &Tracker{
		repo:   repo,
		stats:  stats,
		points: DefaultPoints,
		clock:  opts.Clock,
		log:    opts.Logger,
	}
	if opts.Points != nil {
		t.points = *opts.Points
	}
	if t.clock == nil {
		t.clock = clock.System()
	}
	if t.log == nil {
		t.log = logger.L()
	}
	return t
}

// RecordCompletion applies one scored debate to the user's streak and points,
// then forwards it to the stats aggregator.
//
// Behavior:
//   - No row → streak 1/1, created.
//   - Last active today → streak unchanged, no streak bonus.
//   - Last active yesterday → streak +1, longest raised if needed.
//   - Anything older → streak back to 1.
//   - Points never decrease.
//   - No idempotency key: a retried call is counted again.
//   - The streak row is written before stats. A stats failure returns an
//     error but keeps the streak and points already stored, so retrying that
//     call awards the points twice.
func (t *Tracker) RecordCompletion(ctx context.Context, c Completion) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx, t.log).With("user_id", c.UserID)
	now := t.clock.Now()

	prev, err := t.repo.Get(ctx, c.UserID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}

	next, earned := t.advance(prev, c, now)
	if prev == nil {
		err = t.repo.Create(ctx, &next)
		if errors.Is(err, svcErr.ErrWriteConflict) {
			// another completion created the row first; fold ours into it
			if prev, err = t.repo.Get(ctx, c.UserID); err != nil {
				return nil, fmt.Errorf("re-read streak: %w", err)
			}
			next, earned = t.advance(prev, c, now)
			err = t.repo.Update(ctx, &next)
		}
	} else {
		err = t.repo.Update(ctx, &next)
	}
	if err != nil {
		log.Error("failed to store streak", "err", err)
		return nil, fmt.Errorf("store streak: %w", err)
	}

	metrics.CompletionsTotal.WithLabelValues(string(c.Outcome)).Inc()
	metrics.PointsAwardedTotal.Add(float64(earned))

	if t.stats != nil {
		if err := t.stats.ApplyCompletion(ctx, c); err != nil {
			log.Error("failed to apply stats", "err", err)
			return nil, fmt.Errorf("apply stats: %w", err)
		}
	}

	log.Debug("completion recorded",
		"outcome", c.Outcome,
		"points", earned,
		"current_streak", next.CurrentStreak,
	)
	return &Result{
		PointsEarned:  earned,
		CurrentStreak: next.CurrentStreak,
		LongestStreak: next.LongestStreak,
		TotalPoints:   next.TotalPoints,
	}, nil
}

// GetStreak returns the user's streak with the staleness rule applied.
// Unknown users get a zero state.
func (t *Tracker) GetStreak(ctx context.Context, userID string) (*State, error) {
	s, err := t.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &State{UserID: userID}, nil
	}

	st := &State{
		UserID:        s.UserID,
		DisplayName:   s.DisplayName,
		CurrentStreak: CurrentAt(s.CurrentStreak, s.LastActiveDate, t.clock.Now()),
		LongestStreak: s.LongestStreak,
		TotalPoints:   s.TotalPoints,
	}
	if s.LastActiveDate != nil {
		st.LastActiveDate = *s.LastActiveDate
	}
	return st, nil
}

func (t *Tracker) advance(prev *db.UserStreak, c Completion, now time.Time) (db.UserStreak, int64) {
	next, firstOfDay := Advance(prev, c.UserID, now)
	if c.DisplayName != "" {
		next.DisplayName = c.DisplayName
	}
	earned := t.points.Award(c.Outcome, next.CurrentStreak, firstOfDay)
	next.TotalPoints += earned
	return next, earned
}

// Advance computes the streak transition for an activity at now. It reports
// whether this is the user's first activity of the day. prev is not modified.
func Advance(prev *db.UserStreak, userID string, now time.Time) (db.UserStreak, bool) {
	today := calendar.Day(now)

	if prev == nil {
		return db.UserStreak{
			UserID:         userID,
			CurrentStreak:  1,
			LongestStreak:  1,
			LastActiveDate: &today,
		}, true
	}

	next := *prev
	last := ""
	if prev.LastActiveDate != nil {
		last = *prev.LastActiveDate
	}

	switch last {
	case today:
		return next, false
	case calendar.Yesterday(now):
		next.CurrentStreak++
	default:
		next.CurrentStreak = 1
	}
	next.LongestStreak = max(next.LongestStreak, next.CurrentStreak)
	next.LastActiveDate = &today
	return next, true
}

// CurrentAt applies the read-time staleness rule: a streak not touched today
// or yesterday counts as 0. Storage is left alone.
func CurrentAt(stored int64, lastActive *string, now time.Time) int64 {
	if lastActive == nil || !calendar.IsActive(*lastActive, now) {
		return 0
	}
	return stored
}
