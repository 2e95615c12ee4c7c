// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	defaultVaultFile = "vault.enc"
	accountVaultFile = "vault_user_%s.enc"

	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
)

// FileVaultStorage keeps each vault in its own file under a root directory.
//
// Versions are the hex SHA-256 of the file contents. Writers are serialized
// with an advisory lock on "<vault file>.lock" so that the version check and
// the replace happen as one step, also across processes.
type FileVaultStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileVaultStorage creates root (mode 0700) if needed.
func NewFileVaultStorage(root string, log *logger.Logger) (*FileVaultStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: vaults directory not specified", ErrStorage)
	}
	if err := os.MkdirAll(root, dirMode); err != nil {
		log.Err(err).Str("func", "NewFileVaultStorage").Str("root", root).Msg("error creating vaults directory")
		return nil, fmt.Errorf("%w: create vaults directory: %w", ErrStorage, err)
	}

	return &FileVaultStorage{
		root:   root,
		logger: log,
	}, nil
}

// PathFor returns the vault file of identity. Different identities never
// share a path.
func (s *FileVaultStorage) PathFor(identity models.Identity) string {
	id, ok := identity.AccountID()
	if !ok {
		return filepath.Join(s.root, defaultVaultFile)
	}
	return filepath.Join(s.root, fmt.Sprintf(accountVaultFile, strconv.FormatInt(id, 10)))
}

func (s *FileVaultStorage) Load(ctx context.Context, identity models.Identity) (models.VaultBlob, bool, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.VaultBlob{}, false, err
	}

	path := s.PathFor(identity)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("func", "FileVaultStorage.Load").Stringer(logger.FieldIdentity, identity).Msg("vault file is absent")
			return models.VaultBlob{}, false, nil
		}
		log.Err(err).Str("func", "FileVaultStorage.Load").Stringer(logger.FieldIdentity, identity).Msg("failed to read vault file")
		return models.VaultBlob{}, false, fmt.Errorf("%w: read vault: %w", ErrStorage, err)
	}

	return models.VaultBlob{Data: data, Version: fileVersion(data)}, true, nil
}

func (s *FileVaultStorage) Save(ctx context.Context, identity models.Identity, data []byte, baseVersion string) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.PathFor(identity)
	unlock, err := lockFile(path + ".lock")
	if err != nil {
		log.Err(err).Str("func", "FileVaultStorage.Save").Stringer(logger.FieldIdentity, identity).Msg("failed to lock vault file")
		return "", fmt.Errorf("%w: lock vault: %w", ErrStorage, err)
	}
	defer unlock()

	current, err := s.currentVersion(path)
	if err != nil {
		log.Err(err).Str("func", "FileVaultStorage.Save").Stringer(logger.FieldIdentity, identity).Msg("failed to read current vault version")
		return "", fmt.Errorf("%w: read vault: %w", ErrStorage, err)
	}
	if current != baseVersion {
		log.Warn().Str("func", "FileVaultStorage.Save").Stringer(logger.FieldIdentity, identity).Msg("vault was modified concurrently")
		return "", ErrVersionConflict
	}

	if err = writeFileAtomic(path, data); err != nil {
		log.Err(err).Str("func", "FileVaultStorage.Save").Stringer(logger.FieldIdentity, identity).Msg("failed to write vault file")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return fileVersion(data), nil
}

func (s *FileVaultStorage) currentVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return fileVersion(data), nil
}

func fileVersion(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeFileAtomic writes data to a temp file next to path and renames it over
// path, syncing both the file and the directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp vault: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp vault: %w", err)
	}

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp vault: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp vault: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp vault: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace vault: %w", err)
	}

	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open vaults directory: %w", err)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync vaults directory: %w", err)
	}
	return nil
}
