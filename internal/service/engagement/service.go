package engagement

import (
	"context"
	"errors"
	"strings"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/calendar"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/leaderboard"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	"github.com/colegottdank/debateai-engagement/internal/metrics"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
	"github.com/colegottdank/debateai-engagement/internal/service/convert"
	"github.com/colegottdank/debateai-engagement/internal/streak"
)

// Service implements the Engagement gRPC API on top of the rotation,
// streak and leaderboard components in AppContext.
//
// Read paths (daily topic, history, leaderboard) never fail because of the
// store: they log and fall back to a default. Write paths surface every error.
// Each method corresponds to a gRPC endpoint defined in engagement.proto.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedEngagementServiceServer
}

// NewEngagementService creates a new Engagement service with dependencies from AppContext.
func NewEngagementService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// SelectDailyTopic returns today's topic.
//
// Behavior:
//   - Delegates to the rotation selector (idempotent per UTC date).
//   - Any selector failure (store missing, empty pool, store error) → the
//     configured fallback topic with fallback=true. NoCandidates logs at Error
//     so an operator gets alerted.
//
// Example:
//
//	svc.SelectDailyTopic(ctx, &pb.SelectDailyTopicRequest{})
func (s *Service) SelectDailyTopic(ctx context.Context, _ *pb.SelectDailyTopicRequest) (*pb.SelectDailyTopicResponse, error) {
	log := logger.FromContext(ctx, s.appCtx.Logger)

	sel, err := s.appCtx.Rotation.SelectForToday(ctx)
	if err != nil {
		if errors.Is(err, svcErr.ErrNoCandidates) {
			log.Error("rotation pool has no enabled topics, serving fallback", "err", err)
		} else {
			log.Warn("daily topic unavailable, serving fallback", "err", err)
		}
		metrics.RotationSelectionsTotal.WithLabelValues(metrics.RotationFallback).Inc()
		return &pb.SelectDailyTopicResponse{
			Date:     calendar.Day(s.appCtx.Clock.Now()),
			Topic:    convert.Topic(s.fallbackTopic()),
			Fallback: true,
		}, nil
	}

	log.Debug("SelectDailyTopic result", "date", sel.Date, "topic_id", sel.Topic.ID, "result", sel.Result)
	return &pb.SelectDailyTopicResponse{Date: sel.Date, Topic: convert.Topic(sel.Topic)}, nil
}

// ListHistory returns the most recent shown topics, newest first.
// Store failures degrade to an empty list.
func (s *Service) ListHistory(ctx context.Context, req *pb.ListHistoryRequest) (*pb.ListHistoryResponse, error) {
	if req.GetLimit() < 0 {
		return nil, svcErr.InvalidArgument("limit must not be negative")
	}

	entries, err := s.appCtx.Rotation.History().History(ctx, int(req.GetLimit()))
	if err != nil {
		logger.FromContext(ctx, s.appCtx.Logger).Warn("rotation history unavailable", "err", err)
		return &pb.ListHistoryResponse{}, nil
	}
	return &pb.ListHistoryResponse{Entries: convert.HistoryEntries(entries)}, nil
}

// RecordCompletion applies one newly scored debate to streak, points and stats.
//
// Behavior:
//   - Invalid user id, outcome or score → InvalidArgument, nothing written.
//   - Store failures are surfaced (Unavailable / Internal).
//   - Not idempotent: a retried call is counted twice.
//
// Example:
//
//	svc.RecordCompletion(ctx, &pb.RecordCompletionRequest{UserId: "u1", Outcome: "win", Score: 82})
func (s *Service) RecordCompletion(ctx context.Context, req *pb.RecordCompletionRequest) (*pb.RecordCompletionResponse, error) {
	log := logger.FromContext(ctx, s.appCtx.Logger)
	log.Debug("RecordCompletion called", "user_id", req.GetUserId(), "outcome", req.GetOutcome())

	res, err := s.appCtx.Streaks.RecordCompletion(ctx, streak.Completion{
		UserID:      req.GetUserId(),
		Outcome:     streak.Outcome(req.GetOutcome()),
		Score:       req.GetScore(),
		DisplayName: req.GetDisplayName(),
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}

	return &pb.RecordCompletionResponse{
		PointsEarned:  res.PointsEarned,
		CurrentStreak: res.CurrentStreak,
		LongestStreak: res.LongestStreak,
		TotalPoints:   res.TotalPoints,
	}, nil
}

// GetStreak returns a user's streak as of today. Unknown users get zeros.
func (s *Service) GetStreak(ctx context.Context, req *pb.GetStreakRequest) (*pb.GetStreakResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	st, err := s.appCtx.Streaks.GetStreak(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetStreakResponse{
		UserId:         st.UserID,
		DisplayName:    st.DisplayName,
		CurrentStreak:  st.CurrentStreak,
		LongestStreak:  st.LongestStreak,
		TotalPoints:    st.TotalPoints,
		LastActiveDate: st.LastActiveDate,
	}, nil
}

// GetLeaderboard ranks users for a period and sort key.
//
// Behavior:
//   - Empty period/sort default to weekly/points; unknown values → InvalidArgument.
//   - Store failures degrade to an empty board with degraded=true.
func (s *Service) GetLeaderboard(ctx context.Context, req *pb.GetLeaderboardRequest) (*pb.GetLeaderboardResponse, error) {
	period, err := leaderboard.ParsePeriod(req.GetPeriod())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	sort, err := leaderboard.ParseSort(req.GetSort())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetLeaderboardResponse{Period: string(period), Sort: string(sort)}
	rows, err := s.appCtx.Leaderboard.GetLeaderboard(ctx, leaderboard.Query{Period: period, Sort: sort, Limit: int(req.GetLimit())})
	if err != nil {
		logger.FromContext(ctx, s.appCtx.Logger).Warn("leaderboard unavailable, serving empty board", "err", err)
		resp.Degraded = true
		return resp, nil
	}
	resp.Rows = convert.LeaderboardRows(rows)
	return resp, nil
}

func (s *Service) fallbackTopic() db.Topic {
	cfg := s.appCtx.Config.Rotation
	return db.Topic{
		Content:       cfg.FallbackContent,
		PresenterName: cfg.FallbackPresenter,
		Category:      cfg.FallbackCategory,
		Weight:        1,
		Enabled:       true,
	}
}
