package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label value constants to prevent typos
const (
	// Rotation results
	RotationExisting = "existing"
	RotationPicked   = "picked"
	RotationRelaxed  = "relaxed"
	RotationFullPool = "full_pool"
	RotationConflict = "conflict"
	RotationFallback = "fallback"

	// Cache results
	CacheHit  = "hit"
	CacheMiss = "miss"

	// Cache names
	CacheLeaderboard = "leaderboard"
	CacheDailyTopic  = "daily_topic"

	// Database operations
	DBOpCreateTopic       = "create_topic"
	DBOpUpdateTopic       = "update_topic"
	DBOpGetTopic          = "get_topic"
	DBOpListTopics        = "list_topics"
	DBOpCountTopics       = "count_topics"
	DBOpListEnabledTopics = "list_enabled_topics"
	DBOpGetRotationByDate = "get_rotation_by_date"
	DBOpInsertRotation    = "insert_rotation"
	DBOpRecentlyShown     = "recently_shown"
	DBOpRotationHistory   = "rotation_history"
	DBOpGetStreak         = "get_streak"
	DBOpCreateStreak      = "create_streak"
	DBOpUpdateStreak      = "update_streak"
	DBOpGetStats          = "get_stats"
	DBOpCreateStats       = "create_stats"
	DBOpUpdateStats       = "update_stats"
	DBOpUpsertProfile     = "upsert_profile"
	DBOpLeaderboardRows   = "leaderboard_rows"
)

// gRPC Metrics
var (
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "gRPC request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method"},
	)
)

// Engagement Metrics
var (
	RotationSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotation_selections_total",
			Help: "Daily topic selections by result",
		},
		[]string{"result"},
	)

	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completions_total",
			Help: "Scored debate completions by outcome",
		},
		[]string{"outcome"},
	)

	PointsAwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "points_awarded_total",
			Help: "Total engagement points awarded",
		},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Read cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)
)

// Database Metrics
var (
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Database operation latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	DBOperationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_operation_errors_total",
			Help: "Total number of database operation errors",
		},
		[]string{"operation"},
	)
)

// ObserveDB starts a timer for a database operation. Call the returned func
// with the operation's error when it finishes.
func ObserveDB(op string) func(err error) {
	timer := prometheus.NewTimer(DBOperationDuration.WithLabelValues(op))
	return func(err error) {
		timer.ObserveDuration()
		if err != nil {
			DBOperationErrorsTotal.WithLabelValues(op).Inc()
		}
	}
}
