package cache

import "fmt"

// KeyForDailyTopic is the cache key of the topic shown on day (YYYY-MM-DD).
func KeyForDailyTopic(day string) string {
	return fmt.Sprintf("rotation:daily:%s", day)
}

// KeyForLeaderboard keys a leaderboard view. day is part of the key because
// current streaks are recomputed against today's date.
func KeyForLeaderboard(day, period, sort string, limit int) string {
	return fmt.Sprintf("leaderboard:%s:%s:%s:%d", day, period, sort, limit)
}
