package models

// VaultBlob is an encrypted vault as read from a storage backend.
type VaultBlob struct {
	// Data is the encrypted blob: version || salt || ciphertext.
	Data []byte
	// Version is the optimistic concurrency token the blob was read at.
	// It must be passed back on save; an empty string means "no blob yet".
	Version string
}
