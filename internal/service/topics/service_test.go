package topics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/config"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
	"github.com/colegottdank/debateai-engagement/internal/service/topics"
	"github.com/colegottdank/debateai-engagement/internal/testutil"
)

func setupService(t *testing.T) *topics.Service {
	t.Helper()
	appCtx := app.New(config.New(), testutil.NewDB(t), nil, nil, logger.Discard())
	return topics.NewTopicService(appCtx)
}

func ptr[T any](v T) *T { return &v }

func TestAddTopic(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.AddTopic(ctx, &pb.AddTopicRequest{
		Content:       "Remote work beats the office",
		PresenterName: "Grace",
		PresenterId:   "p-7",
		Category:      "Work",
		Weight:        2,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.GetTopic().GetId())
	assert.True(t, resp.GetTopic().GetEnabled())
	assert.Equal(t, "work", resp.GetTopic().GetCategory())
	require.NotNil(t, resp.GetTopic().PresenterId)
	assert.Equal(t, "p-7", resp.GetTopic().GetPresenterId())

	off, err := svc.AddTopic(ctx, &pb.AddTopicRequest{Content: "Draft", PresenterName: "Grace", Weight: 1, Disabled: true})
	require.NoError(t, err)
	assert.False(t, off.GetTopic().GetEnabled())
}

func TestAddTopic_Validation(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	for name, req := range map[string]*pb.AddTopicRequest{
		"empty content": {Content: "", PresenterName: "Grace", Weight: 1},
		"zero weight":   {Content: "x", PresenterName: "Grace", Weight: 0},
		"negative":      {Content: "x", PresenterName: "Grace", Weight: -1},
		"no presenter":  {Content: "x", Weight: 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddTopic(ctx, req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestUpdateDisableEnable(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	added, err := svc.AddTopic(ctx, &pb.AddTopicRequest{Content: "Tabs over spaces", PresenterName: "Linus", Weight: 1})
	require.NoError(t, err)
	id := added.GetTopic().GetId()

	updated, err := svc.UpdateTopic(ctx, &pb.UpdateTopicRequest{Id: id, Weight: ptr(4.5), Content: ptr("Spaces over tabs")})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.GetTopic().GetWeight())
	assert.Equal(t, "Spaces over tabs", updated.GetTopic().GetContent())
	assert.Equal(t, "Linus", updated.GetTopic().GetPresenterName())

	_, err = svc.UpdateTopic(ctx, &pb.UpdateTopicRequest{Id: id, Weight: ptr(0.0)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	disabled, err := svc.DisableTopic(ctx, &pb.TopicIdRequest{Id: id})
	require.NoError(t, err)
	assert.False(t, disabled.GetTopic().GetEnabled())

	enabled, err := svc.EnableTopic(ctx, &pb.TopicIdRequest{Id: id})
	require.NoError(t, err)
	assert.True(t, enabled.GetTopic().GetEnabled())

	_, err = svc.DisableTopic(ctx, &pb.TopicIdRequest{Id: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.GetTopic(ctx, &pb.TopicIdRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListAndCount(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	for i, c := range []string{"one", "two", "three"} {
		resp, err := svc.AddTopic(ctx, &pb.AddTopicRequest{Content: c, PresenterName: "Ada", Category: "tech", Weight: 1})
		require.NoError(t, err)
		if i == 1 {
			_, err = svc.DisableTopic(ctx, &pb.TopicIdRequest{Id: resp.GetTopic().GetId()})
			require.NoError(t, err)
		}
	}
	_, err := svc.AddTopic(ctx, &pb.AddTopicRequest{Content: "four", PresenterName: "Ada", Category: "food", Weight: 1})
	require.NoError(t, err)

	page, err := svc.ListTopics(ctx, &pb.ListTopicsRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Topics, 2)
	require.NotNil(t, page.NextPaginationToken)

	rest, err := svc.ListTopics(ctx, &pb.ListTopicsRequest{Limit: 2, PaginationToken: page.NextPaginationToken})
	require.NoError(t, err)
	assert.Len(t, rest.Topics, 2)
	assert.Nil(t, rest.NextPaginationToken)

	tech, err := svc.ListTopics(ctx, &pb.ListTopicsRequest{Category: "TECH", EnabledOnly: true})
	require.NoError(t, err)
	assert.Len(t, tech.Topics, 2)

	_, err = svc.ListTopics(ctx, &pb.ListTopicsRequest{PaginationToken: ptr("%%%")})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	count, err := svc.CountTopics(ctx, &pb.CountTopicsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count.Total)
	assert.Equal(t, int64(3), count.Enabled)
}
