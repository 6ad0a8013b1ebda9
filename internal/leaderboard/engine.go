// Package leaderboard ranks users by points, streak, debate count or average score.
//
// Rankings are computed on read. Current streaks and averages are derived at
// query time from the stored counters, so a board never reports a streak that
// lapsed since it was last written.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/streak"
)

const (
	DefaultLimit              = 25
	DefaultMaxLimit           = 100
	DefaultMinAvgScoreDebates = 3
)

// Row is one ranked user.
type Row struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	DisplayName   string  `json:"display_name"`
	Handle        string  `json:"handle,omitempty"`
	TotalPoints   int64   `json:"total_points"`
	CurrentStreak int64   `json:"current_streak"`
	LongestStreak int64   `json:"longest_streak"`
	Debates       int64   `json:"debates"`
	Wins          int64   `json:"wins"`
	AvgScore      float64 `json:"avg_score"`
}

// Options tunes an Engine. Zero values take the defaults.
type Options struct {
	DefaultLimit       int
	MaxLimit           int
	MinAvgScoreDebates int64
	Clock              clock.Clock
	Cache              cache.Cache
	CacheTTL           time.Duration
	Logger             *slog.Logger
}

// Engine is the Leaderboard Query Engine.
type Engine struct {
	repo *repository.LeaderboardRepository

	defaultLimit int
	maxLimit     int
	minAvg       int64
	clock        clock.Clock
	cache        cache.Cache
	cacheTTL     time.Duration
	log          *slog.Logger
}

func NewEngine(repo *repository.LeaderboardRepository, opts Options) *Engine {
	e := &Engine{
		repo:         repo,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
		minAvg:       opts.MinAvgScoreDebates,
		clock:        opts.Clock,
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		log:          opts.Logger,
	}
	if e.maxLimit <= 0 {
		e.maxLimit = DefaultMaxLimit
	}
	if e.defaultLimit <= 0 {
		e.defaultLimit = DefaultLimit
	}
	e.defaultLimit = min(e.defaultLimit, e.maxLimit)
	if e.minAvg <= 0 {
		e.minAvg = DefaultMinAvgScoreDebates
	}
	if e.clock == nil {
		e.clock = clock.System()
	}
	if e.cache == nil {
		e.cache = cache.Noop{}
	}
	if e.log == nil {
		e.log = logger.L()
	}
	return e
}

// GetLeaderboard returns up to q.Limit ranked rows.
//
// Behavior:
//   - Limit ≤ 0 → default limit; larger than the max → clamped.
//   - avg_score needs the configured minimum of in-period debates; other sorts need one.
//   - Weekly boards only see users whose week counters belong to the current ISO week.
//   - Ties fall back to user id so the order is stable between calls.
func (e *Engine) GetLeaderboard(ctx context.Context, q Query) ([]Row, error) {
	if q.Period == "" {
		q.Period = PeriodWeekly
	}
	if q.Sort == "" {
		q.Sort = SortPoints
	}
	q.Limit = e.clampLimit(q.Limit)

	now := e.clock.Now()
	key := cache.KeyForLeaderboard(calendar.Day(now), string(q.Period), string(q.Sort), q.Limit)

	var rows []Row
	if ok, _ := cache.GetJSON(ctx, e.cache, key, &rows); ok {
		metrics.CacheRequestsTotal.WithLabelValues(metrics.CacheLeaderboard, metrics.CacheHit).Inc()
		return rows, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues(metrics.CacheLeaderboard, metrics.CacheMiss).Inc()

	filter := repository.LeaderboardFilter{MinDebates: 1}
	if q.Sort == SortAvgScore {
		filter.MinDebates = e.minAvg
	}
	if q.Period == PeriodWeekly {
		filter.WeekStart = calendar.WeekStart(now)
	}

	records, err := e.repo.Rows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard rows: %w", err)
	}

	rows = Rank(records, q, now)
	if err := cache.SetJSON(ctx, e.cache, key, rows, e.cacheTTL); err != nil {
		logger.FromContext(ctx, e.log).Warn("failed to cache leaderboard", "key", key, "err", err)
	}
	return rows, nil
}

func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.defaultLimit
	}
	return min(limit, e.maxLimit)
}

// Rank turns joined records into ordered rows, truncated to q.Limit.
func Rank(records []repository.LeaderboardRecord, q Query, now time.Time) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		row := Row{
			UserID:        r.UserID,
			DisplayName:   r.DisplayName,
			TotalPoints:   r.TotalPoints,
			CurrentStreak: streak.CurrentAt(r.CurrentStreak, r.LastActiveDate, now),
			LongestStreak: r.LongestStreak,
		}
		if r.Handle != nil {
			row.Handle = *r.Handle
		}
		score := r.TotalScore
		if q.Period == PeriodWeekly {
			row.Debates, row.Wins, score = r.WeekDebates, r.WeekWins, r.WeekScore
		} else {
			row.Debates, row.Wins = r.TotalDebates, r.TotalWins
		}
		if row.Debates > 0 {
			row.AvgScore = score / float64(row.Debates)
		}
		rows = append(rows, row)
	}

	less := lessFor(q.Sort)
	sort.SliceStable(rows, func(i, j int) bool {
		if c := less(rows[i], rows[j]); c != 0 {
			return c < 0
		}
		return rows[i].UserID < rows[j].UserID
	})

	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// lessFor returns a three-way comparison that puts better rows first.
func lessFor(s Sort) func(a, b Row) int {
	switch s {
	case SortStreak:
		return func(a, b Row) int {
			if c := desc(a.CurrentStreak, b.CurrentStreak); c != 0 {
				return c
			}
			return desc(a.LongestStreak, b.LongestStreak)
		}
	case SortDebates:
		return func(a, b Row) int { return desc(a.Debates, b.Debates) }
	case SortAvgScore:
		return func(a, b Row) int { return desc(a.AvgScore, b.AvgScore) }
	default:
		return func(a, b Row) int { return desc(a.TotalPoints, b.TotalPoints) }
	}
}

func desc[T int64 | float64](a, b T) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
