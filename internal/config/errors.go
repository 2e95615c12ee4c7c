package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown backend or a missing DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level or a negative account id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unsupported format version.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidClipboardConfigs indicates an unusable clipboard delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
)
