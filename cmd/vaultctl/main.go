package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log := logger.NewLogger("vaultctl", cfg.App.LogLevel)
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Int("format_version", cfg.Crypto.FormatVersion).
		Int64("account_id", cfg.App.AccountID).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		fmt.Fprintln(os.Stderr, service.UserMessage(err))
		return 1
	}
	defer storages.Close()

	codec, err := vault.NewCodec(crypto.FormatVersion(cfg.Crypto.FormatVersion))
	if err != nil {
		log.Err(err).Msg("error creating vault codec")
		fmt.Fprintln(os.Stderr, service.UserMessage(err))
		return 1
	}

	vaultService := service.NewVaultService(storages.VaultStorage, codec, log)
	prompter := client.NewTerminalPrompter(os.Stdin, os.Stderr)
	clearer := clipboard.NewClearer(clipboard.System())
	defer clearer.Stop()

	app, err := client.NewApp(vaultService, prompter, clearer, cfg, os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, client.ErrorMessage(err))
		return 1
	}

	return 0
}
