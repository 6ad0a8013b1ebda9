package streak_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/clock"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/streak"
	"github.com/colegottdank/debateai-engagement/internal/testutil"
)

type recordingStats struct {
	calls []streak.Completion
	err   error
}

func (r *recordingStats) ApplyCompletion(_ context.Context, c streak.Completion) error {
	r.calls = append(r.calls, c)
	return r.err
}

func newTracker(t *testing.T, day string) (*streak.Tracker, *clock.Manual, *recordingStats) {
	t.Helper()
	clk := clock.NewManual(testutil.Date(day))
	stats := &recordingStats{}
	tr := streak.NewTracker(repository.NewStreakRepository(testutil.NewDB(t)), stats, streak.Options{
		Clock:  clk,
		Logger: logger.Discard(),
	})
	return tr, clk, stats
}

func complete(t *testing.T, tr *streak.Tracker, outcome streak.Outcome, score float64) *streak.Result {
	t.Helper()
	res, err := tr.RecordCompletion(context.Background(), streak.Completion{
		UserID:  "u1",
		Outcome: outcome,
		Score:   score,
	})
	require.NoError(t, err)
	return res
}

func TestRecordCompletion_WinStreakThenReset(t *testing.T) {
	tr, clk, _ := newTracker(t, "2025-06-02")

	res := complete(t, tr, streak.OutcomeWin, 80)
	assert.Equal(t, &streak.Result{PointsEarned: 15, CurrentStreak: 1, LongestStreak: 1, TotalPoints: 15}, res)

	clk.AddDays(1)
	res = complete(t, tr, streak.OutcomeWin, 90)
	assert.Equal(t, int64(2), res.CurrentStreak)
	assert.Equal(t, int64(2), res.LongestStreak)
	assert.Equal(t, int64(10+5+2*2), res.PointsEarned)

	clk.AddDays(3)
	res = complete(t, tr, streak.OutcomeLoss, 40)
	assert.Equal(t, int64(1), res.CurrentStreak)
	assert.Equal(t, int64(2), res.LongestStreak)
	assert.Equal(t, int64(10), res.PointsEarned)
	assert.Equal(t, int64(15+19+10), res.TotalPoints)
}

func TestRecordCompletion_ConsecutiveDaysCountUp(t *testing.T) {
	tr, clk, _ := newTracker(t, "2025-06-02")

	for want := int64(1); want <= 5; want++ {
		res := complete(t, tr, streak.OutcomeDraw, 50)
		assert.Equal(t, want, res.CurrentStreak)
		assert.Equal(t, want, res.LongestStreak)
		clk.AddDays(1)
	}
}

func TestRecordCompletion_SameDayPaysBonusOnce(t *testing.T) {
	tr, clk, _ := newTracker(t, "2025-06-02")

	complete(t, tr, streak.OutcomeWin, 70)
	clk.AddDays(1)

	first := complete(t, tr, streak.OutcomeWin, 70)
	assert.Equal(t, int64(19), first.PointsEarned)

	clk.Advance(3 * time.Hour)
	second := complete(t, tr, streak.OutcomeWin, 70)
	assert.Equal(t, int64(2), second.CurrentStreak, "same day leaves the streak alone")
	assert.Equal(t, int64(15), second.PointsEarned, "no streak bonus on the second debate of the day")
	assert.Equal(t, first.TotalPoints+15, second.TotalPoints)
}

func TestRecordCompletion_TotalPointsNeverDecrease(t *testing.T) {
	tr, clk, _ := newTracker(t, "2025-06-02")

	steps := []struct {
		days    int
		outcome streak.Outcome
	}{
		{0, streak.OutcomeLoss},
		{0, streak.OutcomeLoss},
		{1, streak.OutcomeWin},
		{5, streak.OutcomeLoss},
		{1, streak.OutcomeDraw},
		{0, streak.OutcomeWin},
		{30, streak.OutcomeLoss},
	}

	var last int64
	for _, s := range steps {
		clk.AddDays(s.days)
		res := complete(t, tr, s.outcome, 10)
		assert.GreaterOrEqual(t, res.TotalPoints, last)
		assert.Positive(t, res.PointsEarned)
		last = res.TotalPoints
	}
}

func TestRecordCompletion_AwardsCanBeSwitchedOff(t *testing.T) {
	clk := clock.NewManual(testutil.Date("2025-06-02"))
	tr := streak.NewTracker(repository.NewStreakRepository(testutil.NewDB(t)), nil, streak.Options{
		Points: &streak.Points{},
		Clock:  clk,
		Logger: logger.Discard(),
	})

	complete(t, tr, streak.OutcomeWin, 80)
	clk.AddDays(1)
	res := complete(t, tr, streak.OutcomeWin, 80)
	assert.Equal(t, &streak.Result{PointsEarned: 0, CurrentStreak: 2, LongestStreak: 2, TotalPoints: 0}, res)

	partial := streak.NewTracker(repository.NewStreakRepository(testutil.NewDB(t)), nil, streak.Options{
		Points: &streak.Points{Completion: 10},
		Clock:  clk,
		Logger: logger.Discard(),
	})
	res = complete(t, partial, streak.OutcomeWin, 80)
	assert.Equal(t, int64(10), res.PointsEarned, "no win bonus when it is configured as zero")
}

func TestRecordCompletion_ForwardsToStats(t *testing.T) {
	tr, _, stats := newTracker(t, "2025-06-02")

	_, err := tr.RecordCompletion(context.Background(), streak.Completion{
		UserID:      " u1 ",
		Outcome:     "WIN",
		Score:       88,
		DisplayName: "Ada",
	})
	require.NoError(t, err)

	require.Len(t, stats.calls, 1)
	assert.Equal(t, "u1", stats.calls[0].UserID)
	assert.Equal(t, streak.OutcomeWin, stats.calls[0].Outcome)
	assert.Equal(t, "Ada", stats.calls[0].DisplayName)
}

func TestRecordCompletion_StatsFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewDB(t)
	repo := repository.NewStreakRepository(database)
	stats := &recordingStats{err: errors.New("stats down")}
	tr := streak.NewTracker(repo, stats, streak.Options{
		Clock:  clock.NewManual(testutil.Date("2025-06-02")),
		Logger: logger.Discard(),
	})

	_, err := tr.RecordCompletion(ctx, streak.Completion{UserID: "u1", Outcome: streak.OutcomeWin})
	assert.ErrorIs(t, err, stats.err)

	// the streak write is not rolled back; a retry after this error awards again
	stored, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(15), stored.TotalPoints)
	assert.Equal(t, int64(1), stored.CurrentStreak)
}

func TestRecordCompletion_LosingFirstInsertFoldsIntoWinner(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewDB(t)

	// Simulate a concurrent first completion committing its row just before ours.
	var once sync.Once
	require.NoError(t, database.Callback().Create().Before("gorm:create").Register("test:race", func(tx *gorm.DB) {
		if tx.Statement.Table != "user_streaks" {
			return
		}
		once.Do(func() {
			err := tx.Session(&gorm.Session{NewDB: true}).Exec(
				"INSERT INTO user_streaks (user_id, display_name, current_streak, longest_streak, last_active_date, total_points, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				"u1", "Ada", 1, 1, "2025-06-02", 15, time.Now().UTC(), time.Now().UTC(),
			).Error
			require.NoError(t, err)
		})
	}))

	// Without the default transaction the injected row commits on its own
	// instead of rolling back with our failed insert.
	repo := repository.NewStreakRepository(database.Session(&gorm.Session{SkipDefaultTransaction: true}))
	stats := &recordingStats{}
	tr := streak.NewTracker(repo, stats, streak.Options{
		Clock:  clock.NewManual(testutil.Date("2025-06-02")),
		Logger: logger.Discard(),
	})

	res, err := tr.RecordCompletion(ctx, streak.Completion{UserID: "u1", Outcome: streak.OutcomeLoss, Score: 40})
	require.NoError(t, err)
	assert.Equal(t, &streak.Result{PointsEarned: 10, CurrentStreak: 1, LongestStreak: 1, TotalPoints: 25}, res,
		"same-day completion on top of the winner's row")

	stored, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(25), stored.TotalPoints)
	assert.Equal(t, "Ada", stored.DisplayName)
	assert.Len(t, stats.calls, 1)
}

func TestRecordCompletion_Validation(t *testing.T) {
	tr, _, stats := newTracker(t, "2025-06-02")
	ctx := context.Background()

	cases := map[string]struct {
		in    streak.Completion
		field string
	}{
		"empty user":     {streak.Completion{UserID: " ", Outcome: streak.OutcomeWin}, "user_id"},
		"bad outcome":    {streak.Completion{UserID: "u1", Outcome: "forfeit"}, "outcome"},
		"negative score": {streak.Completion{UserID: "u1", Outcome: streak.OutcomeWin, Score: -1}, "score"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tr.RecordCompletion(ctx, tc.in)
			var ve *svcErr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
	assert.Empty(t, stats.calls)
}

func TestRecordCompletion_NotConfigured(t *testing.T) {
	tr := streak.NewTracker(repository.NewStreakRepository(nil), nil, streak.Options{Logger: logger.Discard()})
	_, err := tr.RecordCompletion(context.Background(), streak.Completion{UserID: "u1", Outcome: streak.OutcomeWin})
	assert.ErrorIs(t, err, svcErr.ErrNotConfigured)
}

func TestGetStreak_StalenessIsReadTime(t *testing.T) {
	ctx := context.Background()
	tr, clk, _ := newTracker(t, "2025-06-02")

	unknown, err := tr.GetStreak(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, &streak.State{UserID: "nobody"}, unknown)

	complete(t, tr, streak.OutcomeWin, 80)
	clk.AddDays(1)
	complete(t, tr, streak.OutcomeWin, 80)

	clk.AddDays(1)
	st, err := tr.GetStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.CurrentStreak, "last active yesterday is still alive")
	assert.Equal(t, "2025-06-03", st.LastActiveDate)

	clk.AddDays(1)
	st, err = tr.GetStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, st.CurrentStreak)
	assert.Equal(t, int64(2), st.LongestStreak)
	assert.Equal(t, int64(34), st.TotalPoints)
}

func TestAdvance_Transitions(t *testing.T) {
	now := testutil.Date("2025-06-10")
	day := func(s string) *string { return &s }

	next, first := streak.Advance(nil, "u1", now)
	assert.True(t, first)
	assert.Equal(t, int64(1), next.CurrentStreak)

	prev := next
	next, first = streak.Advance(&prev, "u1", now)
	assert.False(t, first)
	assert.Equal(t, int64(1), next.CurrentStreak)

	prev.CurrentStreak, prev.LongestStreak, prev.LastActiveDate = 4, 4, day("2025-06-09")
	next, first = streak.Advance(&prev, "u1", now)
	assert.True(t, first)
	assert.Equal(t, int64(5), next.CurrentStreak)
	assert.Equal(t, int64(5), next.LongestStreak)
	assert.Equal(t, "2025-06-09", *prev.LastActiveDate, "input is not modified")

	prev.LastActiveDate = day("2025-06-01")
	next, _ = streak.Advance(&prev, "u1", now)
	assert.Equal(t, int64(1), next.CurrentStreak)
	assert.Equal(t, int64(4), next.LongestStreak)
}

func TestPoints_Award(t *testing.T) {
	p := streak.DefaultPoints
	assert.Equal(t, int64(15), p.Award(streak.OutcomeWin, 1, true))
	assert.Equal(t, int64(10), p.Award(streak.OutcomeLoss, 1, true))
	assert.Equal(t, int64(10+5+6), p.Award(streak.OutcomeWin, 3, true))
	assert.Equal(t, int64(10), p.Award(streak.OutcomeDraw, 3, false))
}
