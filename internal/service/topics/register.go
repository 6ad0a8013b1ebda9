package topics

import (
	"google.golang.org/grpc"

	"github.com/colegottdank/debateai-engagement/internal/app"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
)

// Registrar ties the topic admin service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the topic admin service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the topic admin implementation to the gRPC server
func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	service := NewTopicService(r.appCtx)
	pb.RegisterTopicAdminServiceServer(s, service)
}
