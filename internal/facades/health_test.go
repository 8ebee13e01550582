package facades

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// fakeHealthClient answers Check only; other methods panic through the nil embedded client.
type fakeHealthClient struct {
	healthpb.HealthClient
	status healthpb.HealthCheckResponse_ServingStatus
	err    error
}

func (f *fakeHealthClient) Check(ctx context.Context, req *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &healthpb.HealthCheckResponse{Status: f.status}, nil
}

func TestServing(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeHealthClient
		want    bool
		wantErr bool
	}{
		{name: "serving", client: &fakeHealthClient{status: healthpb.HealthCheckResponse_SERVING}, want: true},
		{name: "not serving", client: &fakeHealthClient{status: healthpb.HealthCheckResponse_NOT_SERVING}},
		{name: "grpc error", client: &fakeHealthClient{err: errors.New("unavailable")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHealthGRPCFacade(tt.client).Serving(context.Background(), "")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialHealth(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("gif-contest", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	go srv.Serve(lis)
	defer srv.Stop()

	facade, conn, err := DialHealth(lis.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	ok, err := facade.Serving(context.Background(), "gif-contest")
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = facade.Serving(context.Background(), "unknown")
	assert.Error(t, err)
}
