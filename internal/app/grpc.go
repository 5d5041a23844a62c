package app

import (
	"context"
	"net"
	"time"

	"github.com/avc-dev/brevly/internal/config/db"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// serviceName имя сервиса в grpc.health.v1
	serviceName = "brevly"

	healthCheckInterval = 15 * time.Second
	healthPingTimeout   = 2 * time.Second
)

// healthServer отдаёт состояние сервиса по протоколу grpc.health.v1
type healthServer struct {
	server   *grpc.Server
	health   *health.Server
	database db.Database
	logger   *zap.Logger
}

func newHealthServer(database db.Database, logger *zap.Logger) *healthServer {
	hs := health.NewServer()
	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	return &healthServer{
		server:   server,
		health:   hs,
		database: database,
		logger:   logger,
	}
}

// check пингует базу данных и обновляет статус; без базы сервис считается живым
func (s *healthServer) check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING

	if s.database != nil {
		pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		err := s.database.Ping(pingCtx)
		cancel()

		if err != nil {
			s.logger.Warn("database health check failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(serviceName, status)
}

// monitor периодически обновляет статус до отмены ctx
func (s *healthServer) monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *healthServer) serve(listener net.Listener) error {
	return s.server.Serve(listener)
}

// stop помечает сервис недоступным и дожидается завершения активных вызовов
func (s *healthServer) stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
