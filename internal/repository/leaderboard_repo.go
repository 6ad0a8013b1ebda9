package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/colegottdank/debateai-engagement/internal/metrics"
)

// LeaderboardRecord is one joined stats + streak (+ profile) row, unadjusted.
type LeaderboardRecord struct {
	UserID         string
	DisplayName    string
	Handle         *string
	CurrentStreak  int64
	LongestStreak  int64
	LastActiveDate *string
	TotalPoints    int64
	TotalDebates   int64
	TotalWins      int64
	TotalScore     float64
	WeekStart      string
	WeekDebates    int64
	WeekWins       int64
	WeekScore      float64
}

// LeaderboardFilter selects the candidate rows of one leaderboard period.
type LeaderboardFilter struct {
	// WeekStart restricts to users whose week counters belong to that week.
	// Empty means all-time.
	WeekStart string
	// MinDebates is the minimum in-period debate count.
	MinDebates int64
}

// LeaderboardRepository reads the joined view the leaderboard engine ranks.
type LeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new repository bound to the given DB connection.
func NewLeaderboardRepository(database *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: database}
}

// Rows returns every user passing the period's sample filter.
//
// Behavior:
//   - INNER JOIN user_stats + user_streaks on user_id; users missing either side are skipped.
//   - LEFT JOIN profiles for the optional handle.
//   - Weekly: stale week counters (week_start ≠ current) never qualify.
//   - No ordering or limit here; streak staleness is a read-time rule applied by the caller.
func (r *LeaderboardRepository) Rows(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardRecord, error) {
	conn, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	query := conn.
		Table("user_stats s").
		Select(`s.user_id, COALESCE(NULLIF(s.display_name, ''), st.display_name) AS display_name,
			p.handle, st.current_streak, st.longest_streak, st.last_active_date, st.total_points,
			s.total_debates, s.total_wins, s.total_score,
			s.week_start, s.week_debates, s.week_wins, s.week_score`).
		Joins("JOIN user_streaks st ON st.user_id = s.user_id").
		Joins("LEFT JOIN profiles p ON p.user_id = s.user_id")

	if filter.WeekStart != "" {
		query = query.Where("s.week_start = ? AND s.week_debates >= ?", filter.WeekStart, filter.MinDebates)
	} else {
		query = query.Where("s.total_debates >= ?", filter.MinDebates)
	}

	done := metrics.ObserveDB(metrics.DBOpLeaderboardRows)
	var rows []LeaderboardRecord
	err = query.Scan(&rows).Error
	done(err)
	return rows, err
}
