package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes engagectl against a SQLite file and returns stdout.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--sqlite", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, raw string, data any) {
	t.Helper()
	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &env), raw)
	require.Equal(t, "ok", env.Status)
	require.NoError(t, json.Unmarshal(env.Data, data))
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"seed", "topics", "rotate", "history", "complete", "streak", "stats", "leaderboard", "profile"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "e.db"), "--format", "xml", "topics", "count")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSeedRotateHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "engagement.db")

	out, err := run(t, dbPath, "--format", "json", "seed")
	require.NoError(t, err)
	var seeded map[string]int
	decode(t, out, &seeded)
	assert.Positive(t, seeded["inserted"])
	assert.Equal(t, seeded["read"], seeded["inserted"])

	out, err = run(t, dbPath, "--format", "json", "seed")
	require.NoError(t, err)
	decode(t, out, &seeded)
	assert.Zero(t, seeded["inserted"], "seeding twice adds nothing")

	var first, again struct {
		Date  string `json:"date"`
		Topic struct {
			ID uint64 `json:"id"`
		} `json:"topic"`
	}
	out, err = run(t, dbPath, "--format", "json", "--today", "2025-06-02", "rotate")
	require.NoError(t, err)
	decode(t, out, &first)
	assert.Equal(t, "2025-06-02", first.Date)

	out, err = run(t, dbPath, "--format", "json", "--today", "2025-06-02", "rotate")
	require.NoError(t, err)
	decode(t, out, &again)
	assert.Equal(t, first.Topic.ID, again.Topic.ID)

	out, err = run(t, dbPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-02")
}

func TestTopicsCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "engagement.db")

	out, err := run(t, dbPath, "topics", "add", "--content", "Zoos should be abolished", "--presenter", "Jane", "--weight", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Added topic 1")

	_, err = run(t, dbPath, "topics", "add", "--content", "Bad", "--presenter", "Jane", "--weight", "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, dbPath, "topics", "disable", "1")
	require.NoError(t, err)

	_, err = run(t, dbPath, "topics", "disable", "99")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err = run(t, dbPath, "--format", "json", "topics", "count")
	require.NoError(t, err)
	var count map[string]int64
	decode(t, out, &count)
	assert.Equal(t, map[string]int64{"total": 1, "enabled": 0}, count)

	_, err = run(t, dbPath, "--today", "2025-06-02", "rotate")
	assert.Equal(t, ExitFailure, GetExitCode(err), "an empty pool is reported, not hidden")

	out, err = run(t, dbPath, "topics", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Zoos should be abolished")
}

func TestCompleteStreakLeaderboard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "engagement.db")

	out, err := run(t, dbPath, "--today", "2025-06-02", "complete", "u1", "win", "80", "--name", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "+15 points")

	out, err = run(t, dbPath, "--format", "json", "--today", "2025-06-03", "complete", "u1", "win", "90")
	require.NoError(t, err)
	var res struct {
		PointsEarned  int64 `json:"points_earned"`
		CurrentStreak int64 `json:"current_streak"`
	}
	decode(t, out, &res)
	assert.Equal(t, int64(19), res.PointsEarned)
	assert.Equal(t, int64(2), res.CurrentStreak)

	_, err = run(t, dbPath, "complete", "u1", "forfeit", "1")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	_, err = run(t, dbPath, "complete", "u1", "win", "abc")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err = run(t, dbPath, "--today", "2025-06-10", "streak", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "streak 0 (best 2)")

	_, err = run(t, dbPath, "profile", "u1", "--handle", "ada")
	require.NoError(t, err)

	out, err = run(t, dbPath, "--today", "2025-06-03", "leaderboard", "--period", "alltime")
	require.NoError(t, err)
	assert.Contains(t, out, "@ada")

	out, err = run(t, dbPath, "--format", "json", "--today", "2025-06-03", "stats", "u1")
	require.NoError(t, err)
	var stats struct {
		TotalDebates int64  `json:"total_debates"`
		WeekStart    string `json:"week_start"`
	}
	decode(t, out, &stats)
	assert.Equal(t, int64(2), stats.TotalDebates)
	assert.Equal(t, "2025-06-02", stats.WeekStart)

	_, err = run(t, dbPath, "leaderboard", "--sort", "elo")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
