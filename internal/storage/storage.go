// Package storage provides the relational storage layer for rackd, backed by
// GORM over postgres or sqlite.
//
// The store is the single arbiter of the model's uniqueness invariants:
// duplicate cabinet placements, double-cabled ports, duplicate identity
// triples and duplicate datacenters are all rejected by unique constraints
// at commit time, never by check-then-insert application logic. Callers
// receive the sentinel errors from errors.go and map them at the API
// boundary.
package storage

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rackd/rackd/internal/config"
	"github.com/rackd/rackd/models"
)

// Storage provides the relational storage interface for rackd entities.
type Storage struct {
	db     *gorm.DB
	config *config.Config
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Storage) debugLog(format string, args ...interface{}) {
	if s.config != nil && s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new Storage instance from the application configuration.
// It opens the configured database, enables constraint enforcement and runs
// the schema migration.
func New(cfg *config.Config) (*Storage, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	logLevel := logger.Silent
	if cfg.Database.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// TranslateError turns driver-specific duplicate-key and
		// foreign-key failures into gorm sentinels for both drivers.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// sqlite does not enforce foreign keys unless asked.
	if cfg.Database.Driver == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	storage := &Storage{db: db, config: cfg}

	if err := storage.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return storage, nil
}

// migrate creates or updates the schema for all entities, then the composite
// unique indexes that cannot be expressed on embedded struct tags.
func (s *Storage) migrate() error {
	if err := s.db.AutoMigrate(
		&models.Datacenter{},
		&models.Device{},
		&models.Server{},
		&models.PowerDistributionUnit{},
		&models.NetworkDevice{},
		&models.Cabinet{},
		&models.CabinetAssignment{},
		&models.PortAssignment{},
	); err != nil {
		return err
	}

	// (manufacturer, model, serial) is unique per variant table.
	identityIndexes := map[string]string{
		"idx_servers_identity":                  "servers",
		"idx_power_distribution_units_identity": "power_distribution_units",
		"idx_network_devices_identity":          "network_devices",
	}
	for name, table := range identityIndexes {
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (manufacturer, model, serial)",
			name, table,
		)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}

	return nil
}

// Ping verifies the database connection is alive.
func (s *Storage) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
