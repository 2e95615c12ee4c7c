package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// SQLVaultStorage keeps one row per identity in the vault_blobs table.
// Versions are the decimal form of the row's integer version column.
type SQLVaultStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLVaultStorage constructs a [VaultStorage] backed by db. The schema
// must already be migrated (see [DB.Migrate]).
func NewSQLVaultStorage(db *DB, log *logger.Logger) *SQLVaultStorage {
	return &SQLVaultStorage{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *SQLVaultStorage) Load(ctx context.Context, identity models.Identity) (models.VaultBlob, bool, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.VaultBlob{}, false, err
	}

	query, args, err := buildLoadVaultQuery(s.builder(), identity.String())
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.Load").Stringer(logger.FieldIdentity, identity).Msg("failed to create query")
		return models.VaultBlob{}, false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	var (
		data    []byte
		version int64
	)
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&data, &version)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "SQLVaultStorage.Load").Stringer(logger.FieldIdentity, identity).Msg("vault row is absent")
		return models.VaultBlob{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.Load").Stringer(logger.FieldIdentity, identity).Msg("failed to load vault row")
		return models.VaultBlob{}, false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrScanningRow, err)
	}

	return models.VaultBlob{Data: data, Version: strconv.FormatInt(version, 10)}, true, nil
}

func (s *SQLVaultStorage) Save(ctx context.Context, identity models.Identity, data []byte, baseVersion string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if baseVersion == "" {
		return s.insert(ctx, identity, data)
	}

	base, err := strconv.ParseInt(baseVersion, 10, 64)
	if err != nil {
		// a token this backend never issued cannot match the stored row
		return "", fmt.Errorf("%w: foreign version %q", ErrVersionConflict, baseVersion)
	}
	return s.update(ctx, identity, data, base)
}

func (s *SQLVaultStorage) insert(ctx context.Context, identity models.Identity, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultQuery(s.builder(), identity.String(), data, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.insert").Stringer(logger.FieldIdentity, identity).Msg("failed to create query")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		if s.errorClassificator.Classify(err) == UniqueViolation {
			log.Warn().Str("func", "SQLVaultStorage.insert").Stringer(logger.FieldIdentity, identity).Msg("vault was created concurrently")
			return "", ErrVersionConflict
		}
		log.Err(err).Str("func", "SQLVaultStorage.insert").Stringer(logger.FieldIdentity, identity).Msg("failed to insert vault row")
		return "", fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingStatement, err)
	}

	return "1", nil
}

func (s *SQLVaultStorage) update(ctx context.Context, identity models.Identity, data []byte, base int64) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultQuery(s.builder(), identity.String(), data, base, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.update").Stringer(logger.FieldIdentity, identity).Msg("failed to create query")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.update").Stringer(logger.FieldIdentity, identity).Msg("failed to update vault row")
		return "", fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "SQLVaultStorage.update").Stringer(logger.FieldIdentity, identity).Msg("failed to read affected rows")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "SQLVaultStorage.update").Stringer(logger.FieldIdentity, identity).Int64("base_version", base).Msg("vault was modified concurrently")
		return "", ErrVersionConflict
	}

	return strconv.FormatInt(base+1, 10), nil
}
