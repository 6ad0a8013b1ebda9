package server_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/colegottdank/debateai-engagement/internal/app"
	"github.com/colegottdank/debateai-engagement/internal/clock"
	"github.com/colegottdank/debateai-engagement/internal/config"
	"github.com/colegottdank/debateai-engagement/internal/logger"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
	"github.com/colegottdank/debateai-engagement/internal/server"
	"github.com/colegottdank/debateai-engagement/internal/service/engagement"
	"github.com/colegottdank/debateai-engagement/internal/service/topics"
	"github.com/colegottdank/debateai-engagement/internal/testutil"
)

// dial starts the full gRPC stack on an in-memory listener.
func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()

	cfg := config.New()
	appCtx := app.New(cfg, testutil.NewDB(t), nil, clock.NewManual(testutil.Date("2025-06-02")), logger.Discard())

	srv, hs := server.NewGRPCServer(logger.Discard(),
		engagement.NewRegistrar(appCtx),
		topics.NewRegistrar(appCtx),
	)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestGRPC_RoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := dial(t)
	admin := pb.NewTopicAdminServiceClient(conn)
	client := pb.NewEngagementServiceClient(conn)

	added, err := admin.AddTopic(ctx, &pb.AddTopicRequest{Content: "Homework should be banned", PresenterName: "Ada", Weight: 1})
	require.NoError(t, err)

	daily, err := client.SelectDailyTopic(ctx, &pb.SelectDailyTopicRequest{})
	require.NoError(t, err)
	assert.False(t, daily.Fallback)
	assert.Equal(t, added.GetTopic().GetId(), daily.GetTopic().GetId())
	assert.Equal(t, "Homework should be banned", daily.GetTopic().GetContent())

	res, err := client.RecordCompletion(ctx, &pb.RecordCompletionRequest{UserId: "u1", Outcome: "win", Score: 80})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.PointsEarned)

	board, err := client.GetLeaderboard(ctx, &pb.GetLeaderboardRequest{Period: "alltime"})
	require.NoError(t, err)
	require.Len(t, board.Rows, 1)
	assert.Equal(t, "u1", board.Rows[0].GetUserId())

	count, err := admin.CountTopics(ctx, &pb.CountTopicsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Total)
}

func TestGRPC_UpdateTopicKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	admin := pb.NewTopicAdminServiceClient(dial(t))

	added, err := admin.AddTopic(ctx, &pb.AddTopicRequest{Content: "Zoos should close", PresenterName: "Ada", PresenterId: "p-1", Weight: 1})
	require.NoError(t, err)

	updated, err := admin.UpdateTopic(ctx, &pb.UpdateTopicRequest{Id: added.GetTopic().GetId(), Weight: proto.Float64(3)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.GetTopic().GetWeight())
	assert.Equal(t, "Zoos should close", updated.GetTopic().GetContent())
	assert.Equal(t, "p-1", updated.GetTopic().GetPresenterId())
	assert.True(t, updated.GetTopic().GetEnabled())

	// an explicitly empty presenter id clears it
	cleared, err := admin.UpdateTopic(ctx, &pb.UpdateTopicRequest{Id: added.GetTopic().GetId(), PresenterId: proto.String("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.GetTopic().PresenterId)
}

func TestGRPC_RegistersGeneratedServices(t *testing.T) {
	appCtx := app.New(config.New(), testutil.NewDB(t), nil, nil, logger.Discard())
	srv, _ := server.NewGRPCServer(logger.Discard(), engagement.NewRegistrar(appCtx), topics.NewRegistrar(appCtx))
	t.Cleanup(srv.Stop)

	info := srv.GetServiceInfo()
	for name, methods := range map[string]int{
		"engagement.v1.EngagementService": 5,
		"engagement.v1.TopicAdminService": 7,
	} {
		require.Contains(t, info, name)
		assert.Len(t, info[name].Methods, methods)
		assert.Equal(t, "engagement/v1/engagement.proto", info[name].Metadata)

		desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(name))
		require.NoError(t, err, "descriptor visible to reflection")
		assert.Equal(t, methods, desc.(protoreflect.ServiceDescriptor).Methods().Len())
	}
}

func TestGRPC_StatusCodesAndRequestID(t *testing.T) {
	conn := dial(t)
	client := pb.NewEngagementServiceClient(conn)

	ctx := metadata.AppendToOutgoingContext(context.Background(), server.RequestIDHeader, "req-123")
	var header metadata.MD
	_, err := client.RecordCompletion(ctx, &pb.RecordCompletionRequest{UserId: "u1", Outcome: "maybe"}, grpc.Header(&header))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, []string{"req-123"}, header.Get(server.RequestIDHeader))

	var generated metadata.MD
	_, err = client.GetStreak(context.Background(), &pb.GetStreakRequest{UserId: "u1"}, grpc.Header(&generated))
	require.NoError(t, err)
	require.Len(t, generated.Get(server.RequestIDHeader), 1)
	assert.NotEmpty(t, generated.Get(server.RequestIDHeader)[0])
}

func TestGRPC_Health(t *testing.T) {
	conn := dial(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
