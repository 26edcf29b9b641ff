package main

import (
	"fmt"
	"log"
	"time"

	"room-server/confs"
	"room-server/db"
	"room-server/logger"
	"room-server/server"
	"room-server/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

// run returns instead of exiting so the deferred close and flush always happen.
func run() error {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "room-server")
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.GinMode)

	reporter := services.NewErrorReporter(cfg.Sentry.DSN, cfg.Sentry.Environment, zlog)
	defer reporter.Flush(2 * time.Second)

	// connect to database
	database, err := db.Connect(cfg.Database)
	if err != nil {
		reporter.Capture(err, map[string]string{"op": "connect database"})
		return fmt.Errorf("connect to %s database: %w", cfg.Database.Driver, err)
	}
	defer func() { _ = database.Close() }()

	// run server
	srv, err := server.NewServer(cfg, database, zlog, reporter)
	if err != nil {
		reporter.Capture(err, map[string]string{"op": "build server"})
		return fmt.Errorf("build server: %w", err)
	}
	if err := srv.Start(); err != nil {
		zlog.Error("server stopped", zap.Error(err))
		reporter.Capture(err, map[string]string{"op": "serve"})
		return err
	}
	return nil
}
