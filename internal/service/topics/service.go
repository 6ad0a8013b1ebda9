package topics

import (
	"context"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/db"
	svcErr "github.com/colegottdank/debateai-engagement/internal/errors"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
	"github.com/colegottdank/debateai-engagement/internal/repository"
	"github.com/colegottdank/debateai-engagement/internal/service/convert"
)

const maxListLimit = 100

// Service implements the topic admin gRPC API: simple record management of
// the rotation pool. Topics are retired by disabling them, never deleted.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedTopicAdminServiceServer
}

// NewTopicService creates a new topic admin service with dependencies from AppContext.
func NewTopicService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// AddTopic validates and inserts a pool item.
//
// Behavior:
//   - Empty content/presenter or non-positive weight → InvalidArgument with the field name.
//   - New topics are enabled unless disabled=true.
//
// Example:
//
//	svc.AddTopic(ctx, &pb.AddTopicRequest{Content: "Cats are better than dogs", PresenterName: "Ada", Weight: 1})
func (s *Service) AddTopic(ctx context.Context, req *pb.AddTopicRequest) (*pb.TopicResponse, error) {
	topic := &db.Topic{
		Content:       req.GetContent(),
		PresenterName: req.GetPresenterName(),
		Category:      req.GetCategory(),
		Weight:        req.GetWeight(),
		Enabled:       !req.GetDisabled(),
	}
	if pid := req.GetPresenterId(); pid != "" {
		topic.PresenterID = &pid
	}

	if err := s.appCtx.Topics.Create(ctx, topic); err != nil {
		logger.FromContext(ctx, s.appCtx.Logger).Info("AddTopic rejected", "err", err)
		return nil, svcErr.Map(err)
	}
	logger.FromContext(ctx, s.appCtx.Logger).Info("topic added", "topic_id", topic.ID, "weight", topic.Weight)
	return &pb.TopicResponse{Topic: convert.Topic(*topic)}, nil
}

// GetTopic loads one topic by id.
func (s *Service) GetTopic(ctx context.Context, req *pb.TopicIdRequest) (*pb.TopicResponse, error) {
	if req.GetId() == 0 {
		return nil, svcErr.InvalidArgument("id is required")
	}
	topic, err := s.appCtx.Topics.Get(ctx, req.GetId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.TopicResponse{Topic: convert.Topic(*topic)}, nil
}

// UpdateTopic applies a partial update. Unset fields are left alone and the
// merged topic must still be valid.
func (s *Service) UpdateTopic(ctx context.Context, req *pb.UpdateTopicRequest) (*pb.TopicResponse, error) {
	if req.GetId() == 0 {
		return nil, svcErr.InvalidArgument("id is required")
	}
	topic, err := s.appCtx.Topics.Update(ctx, req.GetId(), repository.TopicPatch{
		Content:       req.Content,
		PresenterName: req.PresenterName,
		PresenterID:   req.PresenterId,
		Category:      req.Category,
		Weight:        req.Weight,
		Enabled:       req.Enabled,
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.TopicResponse{Topic: convert.Topic(*topic)}, nil
}

// DisableTopic takes a topic out of rotation. Disabling twice is not an error.
func (s *Service) DisableTopic(ctx context.Context, req *pb.TopicIdRequest) (*pb.TopicResponse, error) {
	return s.setEnabled(ctx, req.GetId(), false)
}

// EnableTopic puts a disabled topic back into rotation.
func (s *Service) EnableTopic(ctx context.Context, req *pb.TopicIdRequest) (*pb.TopicResponse, error) {
	return s.setEnabled(ctx, req.GetId(), true)
}

func (s *Service) setEnabled(ctx context.Context, id uint64, enabled bool) (*pb.TopicResponse, error) {
	if id == 0 {
		return nil, svcErr.InvalidArgument("id is required")
	}
	if err := s.appCtx.Topics.SetEnabled(ctx, id, enabled); err != nil {
		return nil, svcErr.Map(err)
	}
	logger.FromContext(ctx, s.appCtx.Logger).Info("topic toggled", "topic_id", id, "enabled", enabled)
	return s.GetTopic(ctx, &pb.TopicIdRequest{Id: id})
}

// ListTopics pages through the pool ordered by id.
//
// Behavior:
//   - limit defaults to 20 and is capped at 100.
//   - A malformed pagination_token → InvalidArgument.
func (s *Service) ListTopics(ctx context.Context, req *pb.ListTopicsRequest) (*pb.ListTopicsResponse, error) {
	limit := min(int(req.GetLimit()), maxListLimit)
	list, next, err := s.appCtx.Topics.List(ctx, repository.TopicFilter{
		EnabledOnly: req.GetEnabledOnly(),
		Category:    req.GetCategory(),
	}, req.PaginationToken, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListTopicsResponse{Topics: convert.Topics(list), NextPaginationToken: next}, nil
}

// CountTopics reports the pool size and how much of it is enabled.
func (s *Service) CountTopics(ctx context.Context, _ *pb.CountTopicsRequest) (*pb.CountTopicsResponse, error) {
	total, enabled, err := s.appCtx.Topics.Count(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountTopicsResponse{Total: total, Enabled: enabled}, nil
}
