package main

import (
	"database/sql"
	"fmt"
	"os"

	"wordtrainer/internal/config"
	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository/postgres"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// initdb initializes the schema and seeds the default catalog, then exits.
// Exit code 0 on success, 1 with a logged cause on failure.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("Database initialization failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database initialized successfully")
}

func run(logger *zap.Logger) error {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	logger.Info("Database connection established")

	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("Schema is up to date")

	wordRepo := postgres.NewWordRepo(db)
	if err := wordRepo.SeedDefaults(domain.DefaultWords); err != nil {
		return fmt.Errorf("seed default words: %w", err)
	}

	logger.Info("Default words seeded", zap.Int("count", len(domain.DefaultWords)))

	return nil
}
