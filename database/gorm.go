package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/config"
	"github.com/sahilchouksey/college-directory/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GORMStore is the Persistence Gateway. It owns the connection pool and is the
// only type that talks to the store.
type GORMStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// StartGORM opens the store selected by cfg.DBDriver
func StartGORM(cfg *config.Config, log zerolog.Logger) (*GORMStore, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	// Configure GORM logger
	logLevel := logger.Info
	switch cfg.GoEnv {
	case "production":
		logLevel = logger.Error
	case "test":
		logLevel = logger.Silent
	}
	gormLogger := newGormLogger(log, logLevel)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: cfg.DBDriver == config.DriverPostgres,
	})
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DBDriver).Msg("unable to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	if cfg.DBDriver == config.DriverSQLite {
		// a single writer avoids "database is locked" under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	return &GORMStore{db: db, log: log}, nil
}

// Init runs AutoMigrate for the directory entities
func (s *GORMStore) Init() error {
	s.log.Info().Msg("running AutoMigrate")

	err := s.db.AutoMigrate(
		&model.College{},
		&model.Course{},
		&model.Enquiry{},
	)
	if err != nil {
		s.log.Error().Err(err).Msg("AutoMigrate failed")
		return err
	}

	return nil
}

// Close releases the connection pool
func (s *GORMStore) Close() error {
	s.log.Info().Msg("closing database connection")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM handle for seeding and tooling
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
