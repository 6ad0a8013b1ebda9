package rotation

import (
	"context"

	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/repository"
)

// HistoryEntry is one day of the rotation log.
type HistoryEntry struct {
	Date  string   `json:"date"`
	Topic db.Topic `json:"topic"`
}

// HistoryLog is the read side of the rotation log.
type HistoryLog struct {
	repo  *repository.RotationRepository
	clock clock.Clock
}

func NewHistoryLog(repo *repository.RotationRepository, clk clock.Clock) *HistoryLog {
	if clk == nil {
		clk = clock.System()
	}
	return &HistoryLog{repo: repo, clock: clk}
}

// RecentlyShown returns ids of topics shown within the last days calendar days
// (today included). days <= 0 yields an empty set.
func (h *HistoryLog) RecentlyShown(ctx context.Context, days int) (map[uint64]struct{}, error) {
	if days <= 0 {
		return map[uint64]struct{}{}, nil
	}
	return h.repo.RecentlyShown(ctx, calendar.DaysAgo(h.clock.Now(), days))
}

// History lists shown topics, most recent date first.
func (h *HistoryLog) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	recs, err := h.repo.History(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, HistoryEntry{Date: r.ShownDate, Topic: r.Topic})
	}
	return entries, nil
}
