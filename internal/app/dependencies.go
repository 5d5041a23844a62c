package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/avc-dev/brevly/internal/config/db"
	"github.com/avc-dev/brevly/internal/handler"
	"github.com/avc-dev/brevly/internal/migrations"
	"github.com/avc-dev/brevly/internal/objectstore"
	"github.com/avc-dev/brevly/internal/repository"
	"github.com/avc-dev/brevly/internal/service"
	"github.com/avc-dev/brevly/internal/store"
	"github.com/avc-dev/brevly/internal/usecase"
	"go.uber.org/zap"
)

// dependencies собранный граф зависимостей приложения
type dependencies struct {
	handler     *handler.Handler
	authService *service.AuthService
	database    db.Database
	// filesRoot каталог локальных отчётов; пусто, если отчёты уходят в S3
	filesRoot string
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	objectStorage, filesRoot, err := initObjectStorage(cfg, logger)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	deps := wireDependencies(cfg, logger, storage, objectStorage, database)
	deps.filesRoot = filesRoot

	return deps, nil
}

// wireDependencies связывает слои поверх готовых хранилищ
func wireDependencies(
	cfg *config.Config,
	logger *zap.Logger,
	storage repository.Store,
	objectStorage service.ObjectStorage,
	database db.Database,
) *dependencies {
	repo := repository.New(storage)
	linkService := service.NewLinkService(repo, cfg)
	reportService := service.NewReportService(repo, objectStorage)
	urlUsecase := usecase.NewURLUsecase(repo, linkService, reportService, logger)

	return &dependencies{
		handler:     handler.New(urlUsecase, logger, database, cfg),
		authService: service.NewAuthService(cfg.JWTSecret),
		database:    database,
	}
}

// initStorage создает хранилище на основе конфигурации.
// С DSN используется PostgreSQL с применёнными миграциями, иначе память процесса.
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("using in-memory storage")
		return store.NewStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.DB(), logger)
	if err := migrator.RunUp(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := migrator.GetVersion(ctx)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		database.Close()
		return nil, nil, fmt.Errorf("database schema version %d is dirty", version)
	}

	logger.Info("using database storage", zap.Uint("schema_version", version))

	return store.NewDatabaseStore(database), database, nil
}

// initObjectStorage выбирает хранилище отчётов: S3-совместимое или локальный каталог,
// раздаваемый по /files/.
func initObjectStorage(cfg *config.Config, logger *zap.Logger) (service.ObjectStorage, string, error) {
	if cfg.Storage.Enabled() {
		s3Storage, err := objectstore.NewS3Storage(cfg.Storage)
		if err != nil {
			return nil, "", err
		}
		logger.Info("using S3 report storage",
			zap.String("endpoint", cfg.Storage.Endpoint),
			zap.String("bucket", cfg.Storage.Bucket),
		)
		return s3Storage, "", nil
	}

	fileStorage, err := objectstore.NewFileStorage(cfg.ReportsDir, config.URLPrefix(cfg.BaseURL.Join("files")))
	if err != nil {
		return nil, "", err
	}
	logger.Info("using local report storage", zap.String("path", fileStorage.Root()))

	return fileStorage, fileStorage.Root(), nil
}
