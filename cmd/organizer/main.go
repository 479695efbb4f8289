package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-family-organizer/internal/adapter"
	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/netmon"
	"github.com/MKhiriev/go-family-organizer/internal/server"
	"github.com/MKhiriev/go-family-organizer/internal/service"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("organizer-sync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	session := adapter.NewSession(cfg.Account.Token)
	gateways, err := adapter.NewGateways(cfg.Adapter, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend gateways")
	}

	monitor := netmon.NewMonitor(cfg.Adapter, cfg.Sync, nil, log)
	syncService := service.NewSyncService(storages, gateways, monitor, cfg.Sync, log)

	statusServer := server.NewStatusServer(
		server.NewHandler(syncService, cfg.Account.ID, log),
		cfg.Status,
		log,
	)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workers.NewWorkers(
		monitor,
		workers.NewSyncWorker(syncService, cfg.Account.ID, cfg.Sync.Interval, log),
		workers.NewConnectivityWorker(syncService, monitor, log),
		statusServer,
	).Run(ctx)

	log.Info().Msg("organizer sync daemon stopped")
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
