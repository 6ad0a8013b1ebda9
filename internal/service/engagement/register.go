package engagement

import (
	"google.golang.org/grpc"

	"github.com/colegottdank/debateai-engagement/internal/app"
	pb "github.com/colegottdank/debateai-engagement/internal/proto/engagement"
)

// Registrar ties the Engagement service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Engagement service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Engagement service implementation to the gRPC server
func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	service := NewEngagementService(r.appCtx)
	pb.RegisterEngagementServiceServer(s, service)
}
