package leaderboard

import (
	"strings"

	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
)

// Period selects which counters a board ranks on.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodAllTime Period = "alltime"
)

// Sort is the ranking key.
type Sort string

const (
	SortPoints   Sort = "points"
	SortStreak   Sort = "streak"
	SortDebates  Sort = "debates"
	SortAvgScore Sort = "avg_score"
)

// ParsePeriod accepts weekly or alltime (also "all_time"). Empty means weekly.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weekly", "week":
		return PeriodWeekly, nil
	case "alltime", "all_time", "all":
		return PeriodAllTime, nil
	}
	return "", svcErr.Invalid("period", "must be weekly or alltime")
}

// ParseSort accepts points, streak, debates or avg_score. Empty means points.
func ParseSort(s string) (Sort, error) {
	switch v := Sort(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return SortPoints, nil
	case SortPoints, SortStreak, SortDebates, SortAvgScore:
		return v, nil
	case "avg", "avgscore":
		return SortAvgScore, nil
	}
	return "", svcErr.Invalid("sort", "must be one of points, streak, debates, avg_score")
}

// Query is one leaderboard request.
type Query struct {
	Period Period
	Sort   Sort
	Limit  int
}
