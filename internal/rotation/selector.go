// Package rotation picks the daily debate topic.
//
// One topic is shown per UTC calendar date. The first caller of the day draws
// a weighted-random topic that has not been shown during the cooldown window
// and records it; every later caller, including racing ones, gets that same
// record back. Uniqueness of the per-date record is left to the store.
package rotation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
	"github.com/colegottdank/debateai-engagement/internal/repository"
)

const (
	DefaultCooldownDays        = 30
	DefaultRelaxedCooldownDays = 7
)

// Options tunes a Selector. Zero values take the defaults.
type Options struct {
	CooldownDays        int
	RelaxedCooldownDays int
	Clock               clock.Clock
	Rand                Rand
	Cache               cache.Cache
	CacheTTL            time.Duration
	Logger              *slog.Logger
}

// Selection is the outcome of SelectForToday.
type Selection struct {
	Topic db.Topic `json:"topic"`
	Date  string   `json:"date"`
	// Result is one of the metrics.Rotation* labels.
	Result string `json:"result"`
}

// Selector is the Rotation Selector.
type Selector struct {
	topics  *repository.TopicRepository
	records *repository.RotationRepository
	history *HistoryLog

	cooldown        int
	relaxedCooldown int
	clock           clock.Clock
	rng             Rand
	cache           cache.Cache
	cacheTTL        time.Duration
	log             *slog.Logger
}

func NewSelector(topics *repository.TopicRepository, records *repository.RotationRepository, opts Options) *Selector {
	s := &Selector{
		topics:          topics,
		records:         records,
		cooldown:        opts.CooldownDays,
		relaxedCooldown: opts.RelaxedCooldownDays,
		clock:           opts.Clock,
		rng:             opts.Rand,
		cache:           opts.Cache,
		cacheTTL:        opts.CacheTTL,
		log:             opts.Logger,
	}
	if s.cooldown <= 0 {
		s.cooldown = DefaultCooldownDays
	}
	if s.relaxedCooldown <= 0 || s.relaxedCooldown > s.cooldown {
		s.relaxedCooldown = min(DefaultRelaxedCooldownDays, s.cooldown)
	}
	if s.clock == nil {
		s.clock = clock.System()
	}
	if s.rng == nil {
		s.rng = DefaultRand()
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.log == nil {
		s.log = logger.L()
	}
	s.history = NewHistoryLog(records, s.clock)
	return s
}

// History exposes the log the selector writes to.
func (s *Selector) History() *HistoryLog {
	return s.history
}

// SelectForToday returns today's topic, picking and recording it on first call.
//
// Behavior:
//   - Existing record for today (UTC) → returned as-is; no re-pick, no write.
//   - Otherwise enabled topics minus those shown in the cooldown window; if none
//     remain the relaxed window is tried, then the whole enabled pool.
//   - Exactly one insert is attempted. Losing the insert race re-reads and
//     returns the winner's topic.
//   - Empty enabled pool → ErrNoCandidates.
//   - Store errors are returned unchanged; nothing is retried with a fresh draw.
func (s *Selector) SelectForToday(ctx context.Context) (*Selection, error) {
	log := logger.FromContext(ctx, s.log)
	today := calendar.Day(s.clock.Now())

	var cached db.Topic
	if ok, _ := cache.GetJSON(ctx, s.cache, cache.KeyForDailyTopic(today), &cached); ok {
		metrics.CacheRequestsTotal.WithLabelValues(metrics.CacheDailyTopic, metrics.CacheHit).Inc()
		return &Selection{Topic: cached, Date: today, Result: metrics.RotationExisting}, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues(metrics.CacheDailyTopic, metrics.CacheMiss).Inc()

	existing, err := s.records.GetByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("load today's rotation: %w", err)
	}
	if existing != nil {
		return s.done(ctx, existing.Topic, today, metrics.RotationExisting), nil
	}

	pool, err := s.topics.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rotation pool: %w", err)
	}
	if len(pool) == 0 {
		log.Warn("rotation pool is empty", "date", today)
		return nil, svcErr.ErrNoCandidates
	}

	candidates, result, err := s.candidates(ctx, pool)
	if err != nil {
		return nil, err
	}
	pick := PickWeighted(candidates, s.rng)

	if _, err := s.records.Insert(ctx, pick.ID, today); err != nil {
		if !errors.Is(err, svcErr.ErrWriteConflict) {
			return nil, fmt.Errorf("record rotation: %w", err)
		}
		winner, rerr := s.records.GetByDate(ctx, today)
		if rerr != nil {
			return nil, fmt.Errorf("re-read rotation after conflict: %w", rerr)
		}
		if winner == nil {
			return nil, fmt.Errorf("rotation for %s vanished after conflict: %w", today, err)
		}
		log.Info("lost daily pick race, using winner", "date", today, "topic_id", winner.TopicID)
		return s.done(ctx, winner.Topic, today, metrics.RotationConflict), nil
	}

	log.Info("daily topic selected",
		"date", today,
		"topic_id", pick.ID,
		"candidates", len(candidates),
		"result", result,
	)
	return s.done(ctx, *pick, today, result), nil
}

// candidates applies the cooldown, relaxing it until something is left.
func (s *Selector) candidates(ctx context.Context, pool []db.Topic) ([]db.Topic, string, error) {
	windows := []struct {
		days   int
		result string
	}{
		{s.cooldown, metrics.RotationPicked},
		{s.relaxedCooldown, metrics.RotationRelaxed},
	}
	for _, w := range windows {
		shown, err := s.history.RecentlyShown(ctx, w.days)
		if err != nil {
			return nil, "", fmt.Errorf("load recently shown: %w", err)
		}
		if left := exclude(pool, shown); len(left) > 0 {
			return left, w.result, nil
		}
	}
	return pool, metrics.RotationFullPool, nil
}

func (s *Selector) done(ctx context.Context, topic db.Topic, day, result string) *Selection {
	metrics.RotationSelectionsTotal.WithLabelValues(result).Inc()
	if err := cache.SetJSON(ctx, s.cache, cache.KeyForDailyTopic(day), topic, s.cacheTTL); err != nil {
		logger.FromContext(ctx, s.log).Warn("failed to cache daily topic", "date", day, "err", err)
	}
	return &Selection{Topic: topic, Date: day, Result: result}
}

func exclude(pool []db.Topic, shown map[uint64]struct{}) []db.Topic {
	out := make([]db.Topic, 0, len(pool))
	for _, t := range pool {
		if _, ok := shown[t.ID]; !ok {
			out = append(out, t)
		}
	}
	return out
}
