// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-pass-vault front ends.
//
// All Msg* constants are human-readable message strings shown to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across front ends.
package app

const (
	// MsgWrongPasswordOrCorrupt is shown when a vault cannot be
	// authenticated. It never says which of the two happened.
	MsgWrongPasswordOrCorrupt = "wrong password or corrupted vault"

	// MsgCorruptStructure is shown when a vault decrypts but its contents
	// are not a valid set of entries.
	MsgCorruptStructure = "vault contents are damaged"

	// MsgEntryNotFound is shown when the requested entry name does not exist.
	MsgEntryNotFound = "entry not found"

	// MsgInvalidInput is shown when a name, secret or password is empty.
	MsgInvalidInput = "invalid input"

	// MsgStorageError is shown when the vault could not be read or written.
	MsgStorageError = "vault storage is unavailable"

	// MsgVersionConflict is shown when another writer changed the vault
	// during the operation.
	MsgVersionConflict = "vault was changed by another process, try again"

	// MsgCanceled is shown when the user interrupted the operation.
	MsgCanceled = "operation canceled"

	// MsgInternalError is shown for anything unexpected.
	MsgInternalError = "internal error"
)
