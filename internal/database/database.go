package database

import (
	"fmt"
	"time"

	"cmms-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverSQLite selects the embedded sqlite backend for local/demo runs.
const DriverSQLite = "sqlite"

type Options struct {
	Driver          string
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
}

// Initialize opens the database connection and creates the schema from GORM
// models. Postgres is the default; DriverSQLite opens an embedded file/memory
// database instead, which is handy for demos and one-off local runs.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	if opts.Driver == DriverSQLite {
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
	} else {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}
	}

	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.Vendor{},
			&models.Asset{},
			&models.Part{},
			&models.Team{},
			&models.User{},
			&models.TeamUser{},
			&models.Category{},
			&models.Procedure{},
			&models.ProcedureSection{},
			&models.ProcedureField{},
			&models.WorkOrder{},
			&models.WorkOrderCategory{},
			&models.WorkOrderPart{},
			&models.ProcedureExecution{},
			&models.ProcedureFieldValue{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
