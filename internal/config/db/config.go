package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const applicationName = "brevly"

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	ConnectTimeout    time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		ConnectTimeout:    5 * time.Second,
	}
}

// Connect создает пул подключений к PostgreSQL.
// *sql.DB для миграций строится поверх того же пула.
func (c *Config) Connect(ctx context.Context) (Database, error) {
	if c.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = c.ConnectTimeout
	poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDBAdapter(pool, stdlib.OpenDBFromPool(pool)), nil
}

//go:generate mockery --name Database

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// Возвращает *sql.DB для миграций
	DB() *sql.DB
}

// DBAdapter адаптер для pgxpool.Pool к Database интерфейсу
type DBAdapter struct {
	Pool  *pgxpool.Pool
	SQLDB *sql.DB
}

// NewDBAdapter создает новый адаптер
func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
}

func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close закрывает *sql.DB и пул; порядок важен, sql.DB использует соединения пула
func (d *DBAdapter) Close() {
	if d.SQLDB != nil {
		d.SQLDB.Close()
	}
	d.Pool.Close()
}

func (d *DBAdapter) DB() *sql.DB {
	return d.SQLDB
}
