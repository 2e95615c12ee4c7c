package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages bundles the vault storage selected by configuration together with
// whatever must be released on shutdown.
type Storages struct {
	VaultStorage VaultStorage

	db *DB
}

// NewStorages opens the backend named by cfg.Backend. SQL backends are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendFile:
		fs, err := NewFileVaultStorage(cfg.Files.VaultsDir, log)
		if err != nil {
			return nil, err
		}
		return &Storages{VaultStorage: fs}, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, fmt.Errorf("%w: migrate: %w", ErrStorage, err)
		}
		return &Storages{VaultStorage: NewSQLVaultStorage(db, log), db: db}, nil

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrStorage, cfg.Backend)
	}
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Backend == config.BackendSQLite {
		return NewConnectSQLite(ctx, cfg.DB, log)
	}
	return NewConnectPostgres(ctx, cfg.DB, log)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
