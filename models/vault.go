// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// VaultEntry is a single credential record stored in a vault.
//
// Name identifies the entry inside its vault and doubles as the map key of
// [Vault]; it is never part of the serialized record value. Secret is the
// protected value and must never be written to logs.
type VaultEntry struct {
	Name        string `json:"-"`
	Username    string `json:"user"`
	Secret      string `json:"password"`
	Description string `json:"description"`
}

// Summary returns the listing projection of the entry, without the secret.
func (e VaultEntry) Summary() EntrySummary {
	return EntrySummary{
		Name:        e.Name,
		Username:    e.Username,
		Description: e.Description,
	}
}

// Normalize trims surrounding whitespace from the name, username and
// description. The secret is kept verbatim.
func (e VaultEntry) Normalize() VaultEntry {
	e.Name = strings.TrimSpace(e.Name)
	e.Username = strings.TrimSpace(e.Username)
	e.Description = strings.TrimSpace(e.Description)
	return e
}

// EntrySummary is what listing operations expose about an entry.
type EntrySummary struct {
	Name        string `json:"name"`
	Username    string `json:"user"`
	Description string `json:"description"`
}

// Vault maps entry names to entries for a single identity. It only exists
// in memory while decrypted.
type Vault map[string]VaultEntry

// NewVault returns an empty vault.
func NewVault() Vault {
	return make(Vault)
}
