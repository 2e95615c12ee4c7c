package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the global flags from args (without the program name).
// Positional arguments after the flags are returned in
// [StructuredConfig.Args].
//
// Flags:
//
//	-log-level minimum log level
//	-account account vault id (0 = default vault)
//	-backend storage backend: file, sqlite or postgres
//	-d vaults directory for the file backend
//	-dsn database DSN for the sql backends
//	-format blob format version written on save (1 or 2)
//	-clear-after clipboard clear delay (e.g. "30s")
//	-c/-config json file path with configs
//	-version print build info and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		logLevel       string
		accountID      int64
		backend        string
		vaultsDir      string
		databaseDSN    string
		formatVersion  int
		clearAfter     time.Duration
		jsonConfigPath string
		showVersion    bool
	)

	fs := flag.NewFlagSet("vaultctl", flag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.Int64Var(&accountID, "account", 0, "Account vault id (0 = default vault)")
	fs.StringVar(&backend, "backend", "", "Storage backend: file, sqlite or postgres")
	fs.StringVar(&vaultsDir, "d", "", "Vaults directory")
	fs.StringVar(&databaseDSN, "dsn", "", "Database DSN")
	fs.IntVar(&formatVersion, "format", 0, "Vault format version written on save (1 or 2)")
	fs.DurationVar(&clearAfter, "clear-after", 0, "Clipboard clear delay (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:  logLevel,
			AccountID: accountID,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				VaultsDir: vaultsDir,
			},
		},
		Crypto: Crypto{
			FormatVersion: formatVersion,
		},
		Clipboard: Clipboard{
			ClearAfter: clearAfter,
		},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
		Args:         fs.Args(),
	}, nil
}
