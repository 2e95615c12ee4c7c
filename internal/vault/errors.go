package vault

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

var (
	// ErrWrongPasswordOrCorrupt means the blob could not be authenticated.
	// A wrong password and a damaged blob are reported the same way.
	ErrWrongPasswordOrCorrupt = errors.New("wrong password or corrupted vault")

	// ErrCorruptStructure means the blob decrypted but the plaintext is not a
	// valid set of entries.
	ErrCorruptStructure = errors.New("vault structure is corrupted")

	ErrEntryNotFound = errors.New("entry not found")

	ErrInvalidInput = validators.ErrInvalidInput
)
