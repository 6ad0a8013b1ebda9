package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		LogSQL   bool
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// Cache backs the bounded-TTL read cache. Backend is one of memory, redis, none.
	Cache struct {
		Backend        string
		MaxEntries     int
		LeaderboardTTL time.Duration
		DailyTopicTTL  time.Duration
	}

	GRPC struct {
		Host string
		Port string
	}

	Metrics struct {
		Addr string
	}

	Rotation struct {
		CooldownDays        int
		RelaxedCooldownDays int
		FallbackContent     string
		FallbackPresenter   string
		FallbackCategory    string
	}

	Points struct {
		Completion        int64
		Win               int64
		StreakBonusPerDay int64
	}

	Leaderboard struct {
		DefaultLimit       int
		MaxLimit           int
		MinAvgScoreDebates int64
	}
}

func New() *Config {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "engagement")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.LogSQL = isTruthy(os.Getenv("DB_LOG_SQL"))
	switch cfg.DB.Driver {
	case "sqlite":
		cfg.DB.DSN = getEnvDefault("SQLITE_PATH", "./data/engagement.db")
	default:
		cfg.DB.DSN = os.Getenv("MYSQL_DSN")
		if cfg.DB.DSN == "" {
			cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
			cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
			cfg.DB.User = getEnvDefault("DB_USER", "root")
			cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
			cfg.DB.Name = getEnvDefault("DB_NAME", "debateai")

			cfg.DB.DSN = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
			)
		}
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// Cache
	cfg.Cache.Backend = strings.ToLower(getEnvDefault("CACHE_BACKEND", "memory"))
	cfg.Cache.MaxEntries = getEnvInt("CACHE_MAX_ENTRIES", 1024)
	cfg.Cache.LeaderboardTTL = getEnvDuration("CACHE_LEADERBOARD_TTL", time.Minute)
	cfg.Cache.DailyTopicTTL = getEnvDuration("CACHE_DAILY_TOPIC_TTL", time.Hour)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Metrics
	cfg.Metrics.Addr = getEnvDefault("METRICS_ADDR", ":9090")

	// Rotation
	cfg.Rotation.CooldownDays = getEnvInt("ROTATION_COOLDOWN_DAYS", 30)
	cfg.Rotation.RelaxedCooldownDays = getEnvInt("ROTATION_RELAXED_COOLDOWN_DAYS", 7)
	cfg.Rotation.FallbackContent = getEnvDefault("ROTATION_FALLBACK_CONTENT", "Social media does more harm than good.")
	cfg.Rotation.FallbackPresenter = getEnvDefault("ROTATION_FALLBACK_PRESENTER", "Socrates")
	cfg.Rotation.FallbackCategory = getEnvDefault("ROTATION_FALLBACK_CATEGORY", "society")

	// Points
	// each field defaults on its own; 0 switches that award off
	cfg.Points.Completion = int64(getEnvNonNegativeInt("POINTS_COMPLETION", 10))
	cfg.Points.Win = int64(getEnvNonNegativeInt("POINTS_WIN", 5))
	cfg.Points.StreakBonusPerDay = int64(getEnvNonNegativeInt("POINTS_STREAK_BONUS_PER_DAY", 2))

	// Leaderboard
	cfg.Leaderboard.DefaultLimit = getEnvInt("LEADERBOARD_DEFAULT_LIMIT", 25)
	cfg.Leaderboard.MaxLimit = getEnvInt("LEADERBOARD_MAX_LIMIT", 100)
	cfg.Leaderboard.MinAvgScoreDebates = int64(getEnvInt("LEADERBOARD_MIN_AVG_SCORE_DEBATES", 3))

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getEnvNonNegativeInt is getEnvInt that also rejects negative values.
func getEnvNonNegativeInt(k string, def int) int {
	if i := getEnvInt(k, def); i >= 0 {
		return i
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
