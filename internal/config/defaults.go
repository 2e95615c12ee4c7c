package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultLogLevel       = "warn"
	DefaultBackend        = BackendFile
	DefaultFormatVersion  = 1
	DefaultClipboardClear = 30 * time.Second

	vaultsDirName = "go-pass-vault"
)

// defaults returns the values used for fields that no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			Backend: DefaultBackend,
			Files: Files{
				VaultsDir: defaultVaultsDir(),
			},
		},
		Crypto: Crypto{
			FormatVersion: DefaultFormatVersion,
		},
		Clipboard: Clipboard{
			ClearAfter: DefaultClipboardClear,
		},
	}
}

func defaultVaultsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return vaultsDirName
	}
	return filepath.Join(dir, vaultsDirName)
}
