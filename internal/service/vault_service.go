package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	opListEntries    = "list_entries"
	opGetEntry       = "get_entry"
	opPutEntry       = "put_entry"
	opDeleteEntry    = "delete_entry"
	opChangePassword = "change_password"
)

type vaultService struct {
	storage   store.VaultStorage
	codec     VaultCodec
	validator validators.Validator
	locks     *identityLocks
	logger    *logger.Logger
}

func NewVaultService(storage store.VaultStorage, codec VaultCodec, log *logger.Logger) VaultService {
	return &vaultService{
		storage:   storage,
		codec:     codec,
		validator: validators.NewEntryValidator(),
		locks:     newIdentityLocks(),
		logger:    log,
	}
}

// loadedVault is a decrypted vault together with the version it was read at.
type loadedVault struct {
	repo    *vault.EntryRepository
	version string
	found   bool
}

func (s *vaultService) ListEntries(ctx context.Context, identity models.Identity, password string) ([]models.EntrySummary, error) {
	ctx, log := s.logger.WithOperation(ctx, opListEntries)

	if err := s.validateAccess(ctx, identity, password); err != nil {
		return nil, err
	}

	loaded, err := s.load(ctx, identity, password)
	if err != nil {
		return nil, err
	}

	entries := loaded.repo.List()
	log.Debug().Stringer(logger.FieldIdentity, identity).Int("count", len(entries)).Msg("entries listed")
	return entries, nil
}

func (s *vaultService) GetEntry(ctx context.Context, identity models.Identity, password, name string) (models.VaultEntry, error) {
	ctx, log := s.logger.WithOperation(ctx, opGetEntry)

	if err := s.validateAccess(ctx, identity, password); err != nil {
		return models.VaultEntry{}, err
	}
	if err := validators.ValidateEntryName(name); err != nil {
		return models.VaultEntry{}, err
	}

	loaded, err := s.load(ctx, identity, password)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry, err := loaded.repo.Get(name)
	if err != nil {
		log.Debug().Stringer(logger.FieldIdentity, identity).Str(logger.FieldEntry, name).Msg("entry not found")
		return models.VaultEntry{}, err
	}

	log.Debug().Stringer(logger.FieldIdentity, identity).Str(logger.FieldEntry, entry.Name).Msg("entry read")
	return entry, nil
}

func (s *vaultService) PutEntry(ctx context.Context, identity models.Identity, password string, entry models.VaultEntry) error {
	ctx, log := s.logger.WithOperation(ctx, opPutEntry)

	if err := s.validateAccess(ctx, identity, password); err != nil {
		return err
	}
	entry = entry.Normalize()
	if err := s.validator.Validate(ctx, entry); err != nil {
		return err
	}

	err := s.mutate(ctx, identity, password, password, func(l loadedVault) (bool, error) {
		return true, l.repo.Put(entry)
	})
	if err != nil {
		return err
	}

	log.Info().Stringer(logger.FieldIdentity, identity).Str(logger.FieldEntry, entry.Name).Msg("entry saved")
	return nil
}

func (s *vaultService) DeleteEntry(ctx context.Context, identity models.Identity, password, name string) (bool, error) {
	ctx, log := s.logger.WithOperation(ctx, opDeleteEntry)

	if err := s.validateAccess(ctx, identity, password); err != nil {
		return false, err
	}
	if err := validators.ValidateEntryName(name); err != nil {
		return false, err
	}

	var deleted bool
	err := s.mutate(ctx, identity, password, password, func(l loadedVault) (bool, error) {
		deleted = l.repo.Delete(name)
		return deleted, nil
	})
	if err != nil {
		return false, err
	}

	log.Info().Stringer(logger.FieldIdentity, identity).Str(logger.FieldEntry, name).Bool("deleted", deleted).Msg("entry delete finished")
	return deleted, nil
}

func (s *vaultService) ChangePassword(ctx context.Context, identity models.Identity, oldPassword, newPassword string) error {
	ctx, log := s.logger.WithOperation(ctx, opChangePassword)

	if err := s.validateAccess(ctx, identity, oldPassword); err != nil {
		return err
	}
	if err := s.validator.Validate(ctx, validators.Password(newPassword), validators.FieldPassword); err != nil {
		return err
	}

	// an absent vault has nothing to re-encrypt
	err := s.mutate(ctx, identity, oldPassword, newPassword, func(l loadedVault) (bool, error) {
		return l.found, nil
	})
	if err != nil {
		return err
	}

	log.Info().Stringer(logger.FieldIdentity, identity).Msg("master password changed")
	return nil
}

func (s *vaultService) validateAccess(ctx context.Context, identity models.Identity, password string) error {
	if err := s.validator.Validate(ctx, identity, validators.FieldIdentity); err != nil {
		return err
	}
	return s.validator.Validate(ctx, validators.Password(password), validators.FieldPassword)
}

// mutate runs change on the decrypted vault under the identity lock and
// saves the result encrypted with savePassword when change reports a
// modification. The save is conditional on the version that was loaded.
func (s *vaultService) mutate(ctx context.Context, identity models.Identity, password, savePassword string, change func(loadedVault) (bool, error)) error {
	log := logger.FromContext(ctx)

	unlock, err := s.locks.lock(ctx, identity.String())
	if err != nil {
		return err
	}
	defer unlock()

	loaded, err := s.load(ctx, identity, password)
	if err != nil {
		return err
	}
	defer clear(loaded.repo.Vault())

	changed, err := change(loaded)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	blob, err := s.codec.Encrypt(loaded.repo.Vault(), savePassword)
	if err != nil {
		log.Err(err).Str("func", "vaultService.mutate").Stringer(logger.FieldIdentity, identity).Msg("failed to encrypt vault")
		return fmt.Errorf("encrypt vault: %w", err)
	}

	if _, err = s.storage.Save(ctx, identity, blob, loaded.version); err != nil {
		log.Err(err).Str("func", "vaultService.mutate").Stringer(logger.FieldIdentity, identity).Msg("failed to save vault")
		return fmt.Errorf("save vault: %w", err)
	}

	return nil
}

// load reads and decrypts the vault of identity. An absent vault is returned
// as an empty one with version "".
func (s *vaultService) load(ctx context.Context, identity models.Identity, password string) (loadedVault, error) {
	log := logger.FromContext(ctx)

	blob, found, err := s.storage.Load(ctx, identity)
	if err != nil {
		log.Err(err).Str("func", "vaultService.load").Stringer(logger.FieldIdentity, identity).Msg("failed to load vault")
		return loadedVault{}, fmt.Errorf("load vault: %w", err)
	}
	if !found {
		return loadedVault{repo: vault.NewEntryRepository(nil)}, nil
	}

	// key derivation is the expensive step
	if err = ctx.Err(); err != nil {
		return loadedVault{}, err
	}

	v, err := s.codec.Decrypt(blob.Data, password)
	if err != nil {
		log.Warn().Err(err).Stringer(logger.FieldIdentity, identity).Msg("failed to decrypt vault")
		return loadedVault{}, fmt.Errorf("decrypt vault: %w", err)
	}

	return loadedVault{repo: vault.NewEntryRepository(v), version: blob.Version, found: true}, nil
}
