// Package db establishes the PostgreSQL connection pool and runs schema
// migrations. Application queries go through pgxpool; migrations go through
// golang-migrate, whose postgres driver rides on database/sql with lib/pq.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/user/growtwitter-go/apperror"
	"github.com/user/growtwitter-go/config"
)

// NewPool establishes the application connection pool and verifies it with a
// ping before returning.
func NewPool(cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error creating pgxpool for database %s", cfg.DBName), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to the database %s", cfg.DBName), err)
	}

	return pool, nil
}

// migrationDSN builds the lib/pq-style DSN golang-migrate's postgres driver expects.
func migrationDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)
}

// RunMigrations applies all pending migrations from migrationsPath.
// migrate.ErrNoChange is not an error: it just means the schema is current.
func RunMigrations(cfg *config.DatabaseConfig, migrationsPath string, log *logrus.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, migrationDSN(cfg))
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			if srcErr != nil {
				log.WithError(srcErr).Warn("error closing migration source")
			}
			if dbErr != nil {
				log.WithError(dbErr).Warn("error closing migration database instance")
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}

	return nil
}
