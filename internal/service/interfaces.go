// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the façade front ends use to work with a password vault.
//
// Every call takes the identity of the vault and the master password. No
// decrypted data or derived key is kept between calls: each call loads and
// decrypts the vault, and mutating calls re-encrypt it under a fresh salt and
// save it atomically. Mutations of one identity are serialized.
//
// Errors match the sentinels in errors.go with [errors.Is].
type VaultService interface {
	// ListEntries returns every entry without secrets, sorted by name.
	// An absent vault lists as empty.
	ListEntries(ctx context.Context, identity models.Identity, password string) ([]models.EntrySummary, error)

	// GetEntry returns the named entry including its secret.
	GetEntry(ctx context.Context, identity models.Identity, password, name string) (models.VaultEntry, error)

	// PutEntry inserts the entry or replaces the one with the same name.
	PutEntry(ctx context.Context, identity models.Identity, password string, entry models.VaultEntry) error

	// DeleteEntry removes the named entry and reports whether it existed.
	DeleteEntry(ctx context.Context, identity models.Identity, password, name string) (bool, error)

	// ChangePassword re-encrypts the vault under newPassword.
	ChangePassword(ctx context.Context, identity models.Identity, oldPassword, newPassword string) error
}

// VaultCodec converts between a decrypted vault and an encrypted blob.
type VaultCodec interface {
	Encrypt(v models.Vault, password string) ([]byte, error)
	Decrypt(blob []byte, password string) (models.Vault, error)
}
