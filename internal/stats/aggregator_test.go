package stats_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/stats"
	"github.com/colegottdank/debateai-engagement/internal/streak"
	"github.com/colegottdank/debateai-engagement/internal/testutil"
)

func newAggregator(t *testing.T, day string) (*stats.Aggregator, *repository.StatsRepository, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(testutil.Date(day))
	repo := repository.NewStatsRepository(testutil.NewDB(t))
	return stats.NewAggregator(repo, clk, logger.Discard()), repo, clk
}

func apply(t *testing.T, agg *stats.Aggregator, outcome streak.Outcome, score float64) {
	t.Helper()
	require.NoError(t, agg.ApplyCompletion(context.Background(), streak.Completion{
		UserID:      "u1",
		Outcome:     outcome,
		Score:       score,
		DisplayName: "Ada",
	}))
}

func TestApplyCompletion_FirstRecord(t *testing.T) {
	// 2025-06-04 is a Wednesday
	agg, repo, _ := newAggregator(t, "2025-06-04")
	apply(t, agg, streak.OutcomeWin, 80)

	s, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Ada", s.DisplayName)
	assert.Equal(t, "2025-06-02", s.WeekStart)
	assert.Equal(t, int64(1), s.TotalDebates)
	assert.Equal(t, int64(1), s.TotalWins)
	assert.Equal(t, 80.0, s.TotalScore)
	assert.Equal(t, int64(1), s.WeekDebates)
	assert.Equal(t, int64(1), s.WeekWins)
	assert.Equal(t, 80.0, s.WeekScore)
}

func TestApplyCompletion_WeekBoundaryResetsWeekOnly(t *testing.T) {
	ctx := context.Background()
	agg, repo, clk := newAggregator(t, "2025-06-06")

	apply(t, agg, streak.OutcomeWin, 80)
	clk.AddDays(1) // Saturday, same week
	apply(t, agg, streak.OutcomeLoss, 30)
	apply(t, agg, streak.OutcomeDraw, 50)

	s, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.WeekDebates)
	assert.Equal(t, int64(1), s.WeekDraws)
	assert.Equal(t, int64(1), s.WeekLosses)

	clk.AddDays(2) // Monday 2025-06-09
	apply(t, agg, streak.OutcomeWin, 90)

	s, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", s.WeekStart)
	assert.Equal(t, int64(1), s.WeekDebates)
	assert.Equal(t, int64(1), s.WeekWins)
	assert.Zero(t, s.WeekLosses)
	assert.Zero(t, s.WeekDraws)
	assert.Equal(t, 90.0, s.WeekScore)

	assert.Equal(t, int64(4), s.TotalDebates)
	assert.Equal(t, int64(2), s.TotalWins)
	assert.Equal(t, int64(1), s.TotalLosses)
	assert.Equal(t, int64(1), s.TotalDraws)
	assert.Equal(t, 250.0, s.TotalScore)
}

func TestGet_ZeroesStaleWeekWithoutWriting(t *testing.T) {
	ctx := context.Background()
	agg, repo, clk := newAggregator(t, "2025-06-04")
	apply(t, agg, streak.OutcomeWin, 80)

	missing, err := agg.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	clk.AddDays(7)
	s, err := agg.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", s.WeekStart)
	assert.Zero(t, s.WeekDebates)
	assert.Zero(t, s.WeekScore)
	assert.Equal(t, int64(1), s.TotalDebates)

	stored, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", stored.WeekStart, "storage untouched")
	assert.Equal(t, int64(1), stored.WeekDebates)
}

func TestApplyCompletion_FoldsIntoExistingRow(t *testing.T) {
	ctx := context.Background()
	agg, repo, _ := newAggregator(t, "2025-06-04")

	require.NoError(t, repo.Create(ctx, &db.UserStats{UserID: "u1", WeekStart: "2025-06-02", TotalDebates: 1, WeekDebates: 1}))
	err := repo.Create(ctx, &db.UserStats{UserID: "u1", WeekStart: "2025-06-02"})
	require.ErrorIs(t, err, svcErr.ErrWriteConflict)

	apply(t, agg, streak.OutcomeWin, 10)
	s, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.TotalDebates)
	assert.Equal(t, int64(2), s.WeekDebates)
}

func TestApplyCompletion_LosingFirstInsertFoldsIntoWinner(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewDB(t)

	// Simulate a concurrent first completion committing its row just before ours.
	var once sync.Once
	require.NoError(t, database.Callback().Create().Before("gorm:create").Register("test:race", func(tx *gorm.DB) {
		if tx.Statement.Table != "user_stats" {
			return
		}
		once.Do(func() {
			err := tx.Session(&gorm.Session{NewDB: true}).Exec(
				"INSERT INTO user_stats (user_id, display_name, total_debates, total_wins, total_draws, total_losses, total_score, week_start, week_debates, week_wins, week_draws, week_losses, week_score, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
				"u1", "Ada", 2, 1, 0, 1, 100.0, "2025-06-02", 2, 1, 0, 1, 100.0, time.Now().UTC(), time.Now().UTC(),
			).Error
			require.NoError(t, err)
		})
	}))

	// Without the default transaction the injected row commits on its own
	// instead of rolling back with our failed insert.
	repo := repository.NewStatsRepository(database.Session(&gorm.Session{SkipDefaultTransaction: true}))
	agg := stats.NewAggregator(repo, clock.NewManual(testutil.Date("2025-06-04")), logger.Discard())

	require.NoError(t, agg.ApplyCompletion(ctx, streak.Completion{UserID: "u1", Outcome: streak.OutcomeWin, Score: 80}))

	s, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(3), s.TotalDebates)
	assert.Equal(t, int64(2), s.TotalWins)
	assert.Equal(t, int64(1), s.TotalLosses)
	assert.Equal(t, 180.0, s.TotalScore)
	assert.Equal(t, "2025-06-02", s.WeekStart)
	assert.Equal(t, int64(3), s.WeekDebates)
	assert.Equal(t, int64(2), s.WeekWins)
	assert.Equal(t, 180.0, s.WeekScore)
	assert.Equal(t, "Ada", s.DisplayName)
}

func TestApplyCompletion_Validation(t *testing.T) {
	agg, _, _ := newAggregator(t, "2025-06-04")
	err := agg.ApplyCompletion(context.Background(), streak.Completion{UserID: "u1", Outcome: "maybe"})
	assert.True(t, svcErr.IsValidation(err))
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	prev := db.UserStats{UserID: "u1", WeekStart: "2025-06-02", TotalDebates: 3, WeekDebates: 3}
	next := stats.Apply(&prev, streak.Completion{UserID: "u1", Outcome: streak.OutcomeWin, Score: 5}, testutil.Date("2025-06-03"))

	assert.Equal(t, int64(3), prev.TotalDebates)
	assert.Equal(t, int64(4), next.TotalDebates)
	assert.Equal(t, int64(4), next.WeekDebates)
}
