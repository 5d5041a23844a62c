package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 120 * time.Second
)

// start запускает HTTP сервер (и gRPC health, если задан адрес)
// и останавливает их по SIGINT/SIGTERM.
func (a *App) start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx)
}

// serve работает до отмены ctx или ошибки одного из серверов
func (a *App) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	var (
		health       *healthServer
		grpcListener net.Listener
	)
	if a.config.GRPCAddress != "" {
		listener, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("failed to listen for gRPC: %w", err)
		}
		health = newHealthServer(a.dbPool, a.logger)
		grpcListener = listener
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		a.logger.Info("starting server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	if health != nil {
		group.Go(func() error {
			health.monitor(ctx, healthCheckInterval)
			return nil
		})

		group.Go(func() error {
			a.logger.Info("starting gRPC health server", zap.String("address", grpcListener.Addr().String()))
			if err := health.serve(grpcListener); err != nil {
				return fmt.Errorf("grpc server failed: %w", err)
			}
			return nil
		})

		group.Go(func() error {
			<-ctx.Done()
			health.stop()
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()

		a.logger.Info("shutting down server", zap.Duration("timeout", a.config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	return group.Wait()
}
