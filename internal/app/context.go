package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/config"
	"github.com/colegottdank/debateai-engagement/internal/leaderboard"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/rotation"
	"github.com/colegottdank/debateai-engagement/internal/stats"
	"github.com/colegottdank/debateai-engagement/internal/streak"
)

// AppContext holds shared dependencies (DB, cache, logger, clock) and the
// engagement components built on top of them. DB may be nil when the store is
// unreachable; every component then reports errors.ErrNotConfigured.
type AppContext struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  cache.Cache
	Clock  clock.Clock
	Logger *slog.Logger

	Topics      *repository.TopicRepository
	Profiles    *repository.ProfileRepository
	Rotation    *rotation.Selector
	Streaks     *streak.Tracker
	Stats       *stats.Aggregator
	Leaderboard *leaderboard.Engine
}

// Option overrides a dependency New would otherwise default.
type Option func(*options)

type options struct {
	rand rotation.Rand
}

// WithRand injects the rotation's random source.
func WithRand(r rotation.Rand) Option {
	return func(o *options) { o.rand = r }
}

// New creates a new AppContext and wires every component from cfg.
// A nil cache disables caching; a nil clock uses the system clock and a nil
// logger the global one.
func New(cfg *config.Config, db *gorm.DB, c cache.Cache, clk clock.Clock, log *slog.Logger, opts ...Option) *AppContext {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if c == nil {
		c = cache.Noop{}
	}
	if clk == nil {
		clk = clock.System()
	}
	if log == nil {
		log = logger.L()
	}

	statsAgg := stats.NewAggregator(repository.NewStatsRepository(db), clk, log.With("component", "stats"))

	return &AppContext{
		Config: cfg,
		DB:     db,
		Cache:  c,
		Clock:  clk,
		Logger: log,

		Topics:   repository.NewTopicRepository(db),
		Profiles: repository.NewProfileRepository(db),
		Rotation: rotation.NewSelector(repository.NewTopicRepository(db), repository.NewRotationRepository(db), rotation.Options{
			CooldownDays:        cfg.Rotation.CooldownDays,
			RelaxedCooldownDays: cfg.Rotation.RelaxedCooldownDays,
			Clock:               clk,
			Rand:                o.rand,
			Cache:               c,
			CacheTTL:            cfg.Cache.DailyTopicTTL,
			Logger:              log.With("component", "rotation"),
		}),
		Streaks: streak.NewTracker(repository.NewStreakRepository(db), statsAgg, streak.Options{
			Points: &streak.Points{
				Completion:        cfg.Points.Completion,
				Win:               cfg.Points.Win,
				StreakBonusPerDay: cfg.Points.StreakBonusPerDay,
			},
			Clock:  clk,
			Logger: log.With("component", "streak"),
		}),
		Stats: statsAgg,
		Leaderboard: leaderboard.NewEngine(repository.NewLeaderboardRepository(db), leaderboard.Options{
			DefaultLimit:       cfg.Leaderboard.DefaultLimit,
			MaxLimit:           cfg.Leaderboard.MaxLimit,
			MinAvgScoreDebates: cfg.Leaderboard.MinAvgScoreDebates,
			Clock:              clk,
			Cache:              c,
			CacheTTL:           cfg.Cache.LeaderboardTTL,
			Logger:             log.With("component", "leaderboard"),
		}),
	}
}

// Degraded reports whether the app runs without a store.
func (a *AppContext) Degraded() bool {
	return a.DB == nil
}
