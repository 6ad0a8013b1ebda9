package leaderboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/cache"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/leaderboard"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/stats"
	"github.com/colegottdank/debateai-engagement/internal/streak"
	"github.com/colegottdank/debateai-engagement/internal/testutil"
)

func day(s string) *string { return &s }

// seed builds four users as of Wednesday 2025-06-04 (week of 2025-06-02).
func seed(t *testing.T, database *gorm.DB) {
	t.Helper()
	require.NoError(t, database.Create(&[]db.UserStreak{
		{UserID: "a", DisplayName: "Ann", CurrentStreak: 3, LongestStreak: 3, LastActiveDate: day("2025-06-04"), TotalPoints: 100},
		{UserID: "b", DisplayName: "Bob", CurrentStreak: 5, LongestStreak: 5, LastActiveDate: day("2025-06-01"), TotalPoints: 200},
		{UserID: "c", DisplayName: "Cy", CurrentStreak: 3, LongestStreak: 7, LastActiveDate: day("2025-06-03"), TotalPoints: 100},
		{UserID: "d", DisplayName: "Di", TotalPoints: 50},
	}).Error)
	require.NoError(t, database.Create(&[]db.UserStats{
		{UserID: "a", TotalDebates: 10, TotalWins: 6, TotalScore: 700, WeekStart: "2025-06-02", WeekDebates: 3, WeekWins: 2, WeekScore: 240},
		{UserID: "b", TotalDebates: 20, TotalScore: 1000, WeekStart: "2025-06-02", WeekDebates: 1, WeekScore: 100},
		{UserID: "c", TotalDebates: 4, TotalScore: 360, WeekStart: "2025-06-02", WeekDebates: 4, WeekScore: 200},
		{UserID: "d", TotalDebates: 6, TotalScore: 600, WeekStart: "2025-05-26", WeekDebates: 6, WeekScore: 600},
	}).Error)
	require.NoError(t, database.Create(&db.Profile{UserID: "a", Handle: "ann"}).Error)
}

func newEngine(t *testing.T, opts leaderboard.Options) (*leaderboard.Engine, *gorm.DB, *clock.Manual) {
	t.Helper()
	database := testutil.NewDB(t)
	seed(t, database)
	clk := clock.NewManual(testutil.Date("2025-06-04"))
	opts.Clock = clk
	opts.Logger = logger.Discard()
	return leaderboard.NewEngine(repository.NewLeaderboardRepository(database), opts), database, clk
}

func ids(rows []leaderboard.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.UserID
	}
	return out
}

func TestGetLeaderboard_Ordering(t *testing.T) {
	engine, _, _ := newEngine(t, leaderboard.Options{})

	tests := []struct {
		period leaderboard.Period
		sort   leaderboard.Sort
		want   []string
	}{
		{leaderboard.PeriodWeekly, leaderboard.SortPoints, []string{"b", "a", "c"}},
		{leaderboard.PeriodWeekly, leaderboard.SortStreak, []string{"c", "a", "b"}},
		{leaderboard.PeriodWeekly, leaderboard.SortDebates, []string{"c", "a", "b"}},
		{leaderboard.PeriodWeekly, leaderboard.SortAvgScore, []string{"a", "c"}},
		{leaderboard.PeriodAllTime, leaderboard.SortPoints, []string{"b", "a", "c", "d"}},
		{leaderboard.PeriodAllTime, leaderboard.SortDebates, []string{"b", "a", "d", "c"}},
		{leaderboard.PeriodAllTime, leaderboard.SortAvgScore, []string{"d", "c", "a", "b"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.period)+"/"+string(tc.sort), func(t *testing.T) {
			rows, err := engine.GetLeaderboard(context.Background(), leaderboard.Query{Period: tc.period, Sort: tc.sort})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(rows))
			for i, r := range rows {
				assert.Equal(t, i+1, r.Rank)
			}
		})
	}
}

func TestGetLeaderboard_ReadTimeValues(t *testing.T) {
	engine, _, _ := newEngine(t, leaderboard.Options{})

	rows, err := engine.GetLeaderboard(context.Background(), leaderboard.Query{Period: leaderboard.PeriodWeekly})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	bob := rows[0]
	assert.Equal(t, "b", bob.UserID)
	assert.Zero(t, bob.CurrentStreak, "lapsed streak is reported as 0")
	assert.Equal(t, int64(5), bob.LongestStreak)

	ann := rows[1]
	assert.Equal(t, "ann", ann.Handle)
	assert.Equal(t, "Ann", ann.DisplayName)
	assert.Equal(t, int64(3), ann.Debates)
	assert.Equal(t, int64(2), ann.Wins)
	assert.InDelta(t, 80.0, ann.AvgScore, 1e-9)
	assert.Empty(t, rows[2].Handle)
}

func TestGetLeaderboard_Limit(t *testing.T) {
	engine, _, _ := newEngine(t, leaderboard.Options{DefaultLimit: 2, MaxLimit: 3})
	ctx := context.Background()

	rows, err := engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodAllTime})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(rows))

	rows, err = engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodAllTime, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodAllTime, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(rows))
}

func TestGetLeaderboard_UsesCacheUntilExpiry(t *testing.T) {
	database := testutil.NewDB(t)
	seed(t, database)
	clk := clock.NewManual(testutil.Date("2025-06-04"))
	engine := leaderboard.NewEngine(repository.NewLeaderboardRepository(database), leaderboard.Options{
		Clock:    clk,
		Cache:    cache.NewMemory(clk, 16),
		CacheTTL: time.Minute,
		Logger:   logger.Discard(),
	})
	ctx := context.Background()
	q := leaderboard.Query{Period: leaderboard.PeriodAllTime, Sort: leaderboard.SortPoints}

	first, err := engine.GetLeaderboard(ctx, q)
	require.NoError(t, err)
	require.Equal(t, "b", first[0].UserID)

	require.NoError(t, database.Model(&db.UserStreak{}).Where("user_id = ?", "d").Update("total_points", 999).Error)

	cached, err := engine.GetLeaderboard(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	clk.Advance(2 * time.Minute)
	fresh, err := engine.GetLeaderboard(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "d", fresh[0].UserID)
}

func TestGetLeaderboard_FromCompletions(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewDB(t)
	clk := clock.NewManual(testutil.Date("2025-06-02"))

	agg := stats.NewAggregator(repository.NewStatsRepository(database), clk, logger.Discard())
	tracker := streak.NewTracker(repository.NewStreakRepository(database), agg, streak.Options{Clock: clk, Logger: logger.Discard()})
	engine := leaderboard.NewEngine(repository.NewLeaderboardRepository(database), leaderboard.Options{Clock: clk, Logger: logger.Discard()})

	record := func(user string, outcome streak.Outcome, score float64) {
		_, err := tracker.RecordCompletion(ctx, streak.Completion{UserID: user, Outcome: outcome, Score: score})
		require.NoError(t, err)
	}

	// "steady" plays three debates across the week; "oneshot" plays once with a perfect score
	record("steady", streak.OutcomeWin, 70)
	clk.AddDays(1)
	record("steady", streak.OutcomeWin, 80)
	record("oneshot", streak.OutcomeWin, 100)
	clk.AddDays(1)
	record("steady", streak.OutcomeLoss, 90)

	byAvg, err := engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodWeekly, Sort: leaderboard.SortAvgScore})
	require.NoError(t, err)
	require.Equal(t, []string{"steady"}, ids(byAvg), "fewer than three debates never ranks by average")
	assert.InDelta(t, 80.0, byAvg[0].AvgScore, 1e-9)

	byPoints, err := engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodWeekly, Sort: leaderboard.SortPoints})
	require.NoError(t, err)
	assert.Equal(t, []string{"steady", "oneshot"}, ids(byPoints))
	assert.Equal(t, int64(3), byPoints[0].CurrentStreak)

	// the following week nobody has played yet
	clk.AddDays(6)
	weekly, err := engine.GetLeaderboard(ctx, leaderboard.Query{Period: leaderboard.PeriodWeekly})
	require.NoError(t, err)
	assert.Empty(t, weekly)
}

func TestGetLeaderboard_NotConfigured(t *testing.T) {
	engine := leaderboard.NewEngine(repository.NewLeaderboardRepository(nil), leaderboard.Options{Logger: logger.Discard()})
	_, err := engine.GetLeaderboard(context.Background(), leaderboard.Query{})
	assert.ErrorIs(t, err, svcErr.ErrNotConfigured)
}

func TestParse(t *testing.T) {
	p, err := leaderboard.ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, leaderboard.PeriodWeekly, p)

	p, err = leaderboard.ParsePeriod("All_Time")
	require.NoError(t, err)
	assert.Equal(t, leaderboard.PeriodAllTime, p)

	_, err = leaderboard.ParsePeriod("monthly")
	assert.True(t, svcErr.IsValidation(err))

	s, err := leaderboard.ParseSort("AVG_SCORE")
	require.NoError(t, err)
	assert.Equal(t, leaderboard.SortAvgScore, s)

	_, err = leaderboard.ParseSort("elo")
	assert.True(t, svcErr.IsValidation(err))
}
