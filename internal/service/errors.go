package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

// Errors returned by [VaultService], gathered here so front ends depend on a
// single package.
var (
	ErrWrongPasswordOrCorrupt = vault.ErrWrongPasswordOrCorrupt
	ErrCorruptStructure       = vault.ErrCorruptStructure
	ErrEntryNotFound          = vault.ErrEntryNotFound
	ErrInvalidInput           = vault.ErrInvalidInput
	ErrStorage                = store.ErrStorage
	ErrVersionConflict        = store.ErrVersionConflict
)
