package crypto

import "errors"

var (
	// ErrAuthFailure is returned by [Cipher.Open] when authenticated
	// decryption fails. It deliberately carries no detail about the cause.
	ErrAuthFailure = errors.New("authenticated decryption failed")

	// ErrInvalidKeyLength is returned when a key is not KeySize bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSaltLength is returned when a salt is not SaltSize bytes long.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrUnsupportedVersion is returned by [SuiteFor] for unknown format versions.
	ErrUnsupportedVersion = errors.New("unsupported format version")
)
