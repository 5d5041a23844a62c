package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrator применяет встроенные миграции схемы links/reports
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator создает новый экземпляр migrator
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// newInstance работает на отдельном соединении: Close у migrate закрывает только его, а не *sql.DB
func (m *Migrator) newInstance(ctx context.Context) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return instance, nil
}

// RunUp применяет все миграции вверх
func (m *Migrator) RunUp(ctx context.Context) error {
	m.logger.Info("Starting database migrations")

	instance, err := m.newInstance(ctx)
	if err != nil {
		return err
	}
	defer instance.Close()

	err = instance.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("No migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		version, _, _ := instance.Version()
		m.logger.Info("Migrations applied successfully", zap.Uint("version", version))
	}

	return nil
}

// GetVersion возвращает текущую версию миграций
func (m *Migrator) GetVersion(ctx context.Context) (uint, bool, error) {
	instance, err := m.newInstance(ctx)
	if err != nil {
		return 0, false, err
	}
	defer instance.Close()

	return instance.Version()
}
