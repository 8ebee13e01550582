package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade queries a running contest instance over the gRPC health protocol.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// DialHealth connects to addr without TLS. The caller closes the returned connection.
func DialHealth(addr string) (*HealthGRPCFacade, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewHealthGRPCFacade(healthpb.NewHealthClient(conn)), conn, nil
}

// Serving reports whether service is SERVING. An empty service asks for the overall status.
func (f *HealthGRPCFacade) Serving(ctx context.Context, service string) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
