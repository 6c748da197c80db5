// SPDX-License-Identifier: Apache-2.0

// Command storaged runs the collabsync storage backend: a self-hosted
// replacement for the portal storage a collaboration room syncs through.
// It persists encrypted scene snapshots and binary asset blobs in
// Postgres or SQLite and serves them over the HTTP API consumed by the
// adapter package.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/sketchwell/collabsync/internal/config"
	"github.com/sketchwell/collabsync/internal/logger"
	"github.com/sketchwell/collabsync/internal/server"
	"github.com/sketchwell/collabsync/internal/store"
	"github.com/sketchwell/collabsync/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("storaged")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, dialect, err := connectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, dialect); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	scenes := store.NewSceneRepository(db)
	blobs := store.NewBlobRepository(db, cfg.Server.PublicBaseURL)

	handler := server.NewHandler(scenes, blobs, cfg.Auth, log)
	srv := server.NewServer(cfg.Server.HTTPAddress, handler.Init(), cfg.Server.RequestTimeout, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err = <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Err(err).Msg("error shutting down http server")
		}
	}

	log.Info().Msg("storaged stopped")
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, string, error) {
	switch cfg.Driver {
	case "pgx":
		db, err := store.NewConnectPostgres(ctx, cfg, log)
		return db, "postgres", err
	case "sqlite3":
		db, err := store.NewConnectSQLite(ctx, cfg, log)
		return db, "sqlite3", err
	default:
		return nil, "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
