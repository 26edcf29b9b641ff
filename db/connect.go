package db

import (
	"fmt"
	"strings"

	"room-server/confs"
	"room-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database, sizes the pool and migrates the schema.
func Connect(cfg confs.Database) (Database, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.Default.LogMode(logLevel(cfg.LogLevel)),
		PrepareStmt: cfg.Driver != "sqlite",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if isMemorySQLite(cfg) {
		// every connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: db}, nil
}

// Migrate creates or updates the tables backing every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Room{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func dialectorFor(cfg confs.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	case "postgres", "":
		return postgres.Open(postgresDSN(cfg)), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func postgresDSN(cfg confs.Database) string {
	if cfg.URL != "" {
		dsn := cfg.URL
		if cfg.SSLMode != "" && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=" + cfg.SSLMode
			} else {
				dsn += "?sslmode=" + cfg.SSLMode
			}
		}
		return dsn
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
		if cfg.Host == "localhost" || cfg.Host == "127.0.0.1" {
			sslMode = "disable"
		}
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
}

func isMemorySQLite(cfg confs.Database) bool {
	return cfg.Driver == "sqlite" && (cfg.SQLitePath == ":memory:" || strings.Contains(cfg.SQLitePath, "mode=memory"))
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
