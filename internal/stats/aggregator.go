// Package stats keeps per-user lifetime and current-week debate totals.
package stats

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
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/streak"
)

// Aggregator is the Stats Aggregator. It implements streak.StatsRecorder.
type Aggregator struct {
	repo  *repository.StatsRepository
	clock clock.Clock
	log   *slog.Logger
}

var _ streak.StatsRecorder = (*Aggregator)(nil)

func NewAggregator(repo *repository.StatsRepository, clk clock.Clock, log *slog.Logger) *Aggregator {
	if clk == nil {
		clk = clock.System()
	}
	if log == nil {
		log = logger.L()
	}
	return &Aggregator{repo: repo, clock: clk, log: log}
}

// ApplyCompletion counts one completion.
//
// Behavior:
//   - Lifetime counters always increment.
//   - Stored week_start == current ISO week → week counters increment.
//   - Otherwise week counters restart from this completion and week_start moves.
func (a *Aggregator) ApplyCompletion(ctx context.Context, c streak.Completion) error {
	if err := c.Validate(); err != nil {
		return err
	}
	now := a.clock.Now()

	prev, err := a.repo.Get(ctx, c.UserID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	if prev == nil {
		next := Apply(nil, c, now)
		err = a.repo.Create(ctx, &next)
		if !errors.Is(err, svcErr.ErrWriteConflict) {
			return err
		}
		if prev, err = a.repo.Get(ctx, c.UserID); err != nil {
			return fmt.Errorf("re-read stats: %w", err)
		}
	}

	next := Apply(prev, c, now)
	return a.repo.Update(ctx, &next)
}

// Get returns the user's stats with stale week counters zeroed, or nil for an unknown user.
func (a *Aggregator) Get(ctx context.Context, userID string) (*db.UserStats, error) {
	s, err := a.repo.Get(ctx, userID)
	if err != nil || s == nil {
		return s, err
	}
	current := AsOf(*s, a.clock.Now())
	return &current, nil
}

// Apply folds one completion into prev (nil for a new user). prev is not modified.
func Apply(prev *db.UserStats, c streak.Completion, now time.Time) db.UserStats {
	var next db.UserStats
	if prev != nil {
		next = AsOf(*prev, now)
	} else {
		next = db.UserStats{UserID: c.UserID, WeekStart: calendar.WeekStart(now)}
	}
	if c.DisplayName != "" {
		next.DisplayName = c.DisplayName
	}

	next.TotalDebates++
	next.WeekDebates++
	next.TotalScore += c.Score
	next.WeekScore += c.Score
	switch c.Outcome {
	case streak.OutcomeWin:
		next.TotalWins++
		next.WeekWins++
	case streak.OutcomeDraw:
		next.TotalDraws++
		next.WeekDraws++
	case streak.OutcomeLoss:
		next.TotalLosses++
		next.WeekLosses++
	}
	return next
}

// AsOf returns s with its week counters reset when they belong to an earlier week.
func AsOf(s db.UserStats, now time.Time) db.UserStats {
	week := calendar.WeekStart(now)
	if s.WeekStart == week {
		return s
	}
	s.WeekStart = week
	s.WeekDebates, s.WeekWins, s.WeekDraws, s.WeekLosses = 0, 0, 0, 0
	s.WeekScore = 0
	return s
}
