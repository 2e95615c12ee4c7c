// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// It runs after defaults are applied, so zero values here mean a source
// explicitly produced something unusable.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}
	if cfg.App.AccountID < 0 {
		return fmt.Errorf("%w: account id %d", ErrInvalidAppConfigs, cfg.App.AccountID)
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.Files.VaultsDir == "" {
			return fmt.Errorf("%w: vaults directory is empty", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s backend", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Crypto.FormatVersion != 1 && cfg.Crypto.FormatVersion != 2 {
		return fmt.Errorf("%w: format version %d", ErrInvalidCryptoConfigs, cfg.Crypto.FormatVersion)
	}

	if cfg.Clipboard.ClearAfter < 0 {
		return fmt.Errorf("%w: negative clear delay", ErrInvalidClipboardConfigs)
	}

	return nil
}
