// Package health reports the state of the contest's storage and cache through the
// standard gRPC health service.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/gif-contest/internal/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported by the overall status.
const ServiceName = "gif-contest"

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// Checker pings registered components and publishes the results to a health server.
// Each component is reported as "gif-contest.<name>"; the overall status ("" and
// ServiceName) is SERVING only while every component is.
type Checker struct {
	server  *health.Server
	timeout time.Duration

	mu         sync.Mutex
	components map[string]PingFunc
}

// NewChecker creates a Checker publishing to server. Each ping is bounded by timeout.
func NewChecker(server *health.Server, timeout time.Duration) *Checker {
	return &Checker{
		server:     server,
		timeout:    timeout,
		components: make(map[string]PingFunc),
	}
}

// Server returns the health server to register with a gRPC server.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Register adds a component. Registering a name twice replaces the ping.
func (c *Checker) Register(name string, ping PingFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components[name] = ping
}

// Check pings every component once and updates the server. It returns the names of the
// failing components in sorted order.
func (c *Checker) Check(ctx context.Context) []string {
	c.mu.Lock()
	names := make([]string, 0, len(c.components))
	for name := range c.components {
		names = append(names, name)
	}
	pings := make(map[string]PingFunc, len(c.components))
	for name, ping := range c.components {
		pings[name] = ping
	}
	c.mu.Unlock()
	sort.Strings(names)

	var failing []string
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := pings[name](pingCtx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			logger.Log.Warnw("health check failed", "component", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			failing = append(failing, name)
		}
		c.server.SetServingStatus(ServiceName+"."+name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if len(failing) > 0 {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", overall)
	c.server.SetServingStatus(ServiceName, overall)

	return failing
}

// Run checks immediately and then every interval until ctx is done, after which every
// status is set to NOT_SERVING.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
