package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStorage persists one opaque encrypted blob per identity.
//
// Load reports an absent vault with found == false and a nil error.
//
// Save replaces the blob atomically: a reader sees either the old or the
// new bytes, never a mix. baseVersion is the Version returned by the Load
// the caller started from ("" when the vault was absent); if the stored
// version differs, Save fails with ErrVersionConflict and writes nothing.
type VaultStorage interface {
	Load(ctx context.Context, identity models.Identity) (blob models.VaultBlob, found bool, err error)
	Save(ctx context.Context, identity models.Identity, data []byte, baseVersion string) (newVersion string, err error)
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
