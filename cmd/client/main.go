package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-notes/internal/client"
	"github.com/MKhiriev/go-secure-notes/internal/config"
	"github.com/MKhiriev/go-secure-notes/internal/crypto"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/tui"
	"github.com/MKhiriev/go-secure-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewClientLogger("go-secure-notes", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("go-secure-notes", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	deviceKey, err := crypto.LoadOrCreateDeviceKey(cfg.Storage.KeyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load device key")
	}

	keychain, err := crypto.NewKeyChainService(deviceKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create keychain")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, keychain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create secure storage")
	}

	services := service.NewClientServices(storages, crypto.NewSecretHasher(), cfg.Auth, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		closeStorages(storages, log)
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		closeStorages(storages, log)
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	closeStorages(storages, log)
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}

func closeStorages(storages *store.ClientStorages, log *logger.Logger) {
	if err := storages.Close(); err != nil {
		log.Error().Err(err).Msg("close secure storage")
	}
}
