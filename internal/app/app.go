package app

import (
	"context"
	"net/http"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/config/db"
	"go.uber.org/zap"
)

// App представляет приложение brevly
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
	dbPool db.Database
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(context.Background(), cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(deps, logger, cfg),
		dbPool: deps.database,
	}, nil
}

// newLogger выбирает конфигурацию zap по окружению
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Run запускает приложение и блокируется до сигнала остановки
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start()
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("database connection pool closed")
	}
}
