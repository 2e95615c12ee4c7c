package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// FormatVersion is the first byte of every encrypted vault. It pins the KDF,
// its parameters and the cipher used to produce the rest of the blob.
type FormatVersion byte

const (
	// FormatV1 is PBKDF2-HMAC-SHA256 (200k iterations) + AES-256-GCM.
	FormatV1 FormatVersion = 1
	// FormatV2 is Argon2id (t=1, m=64MiB, p=4) + XChaCha20-Poly1305.
	FormatV2 FormatVersion = 2
)

// DefaultFormatVersion is written when nothing else is configured.
const DefaultFormatVersion = FormatV1

// Suite bundles the primitives of one format version.
type Suite struct {
	Version FormatVersion
	KDF     KeyDeriver
	Cipher  Cipher
}

// SuiteFor returns the primitives for version v.
func SuiteFor(v FormatVersion) (Suite, error) {
	switch v {
	case FormatV1:
		return Suite{Version: v, KDF: NewPBKDF2Deriver(), Cipher: NewAESGCMCipher()}, nil
	case FormatV2:
		return Suite{Version: v, KDF: NewArgon2idDeriver(), Cipher: NewXChaCha20Poly1305Cipher()}, nil
	default:
		return Suite{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
}

// NewSalt reads SaltSize bytes from the OS CSPRNG.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	clear(b)
}
