// Package convert maps domain values onto the generated API messages.
package convert

import (
	"github.com/colegottdank/debateai-engagement/internal/db"
	"github.com/colegottdank/debateai-engagement/internal/leaderboard"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
	"github.com/colegottdank/debateai-engagement/internal/rotation"
)

// Topic converts a pool item. The presenter id stays unset when the topic has none.
func Topic(t db.Topic) *pb.Topic {
	out := &pb.Topic{
		Id:            t.ID,
		Content:       t.Content,
		PresenterName: t.PresenterName,
		Category:      t.Category,
		Weight:        t.Weight,
		Enabled:       t.Enabled,
	}
	if t.PresenterID != nil {
		pid := *t.PresenterID
		out.PresenterId = &pid
	}
	return out
}

func Topics(list []db.Topic) []*pb.Topic {
	out := make([]*pb.Topic, 0, len(list))
	for _, t := range list {
		out = append(out, Topic(t))
	}
	return out
}

func HistoryEntries(entries []rotation.HistoryEntry) []*pb.HistoryEntry {
	out := make([]*pb.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &pb.HistoryEntry{Date: e.Date, Topic: Topic(e.Topic)})
	}
	return out
}

func LeaderboardRows(rows []leaderboard.Row) []*pb.LeaderboardRow {
	out := make([]*pb.LeaderboardRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &pb.LeaderboardRow{
			Rank:          int32(r.Rank),
			UserId:        r.UserID,
			DisplayName:   r.DisplayName,
			Handle:        r.Handle,
			TotalPoints:   r.TotalPoints,
			CurrentStreak: r.CurrentStreak,
			LongestStreak: r.LongestStreak,
			Debates:       r.Debates,
			Wins:          r.Wins,
			AvgScore:      r.AvgScore,
		})
	}
	return out
}
