// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault turns a decrypted set of entries into an encrypted blob and
// back, and offers in-memory CRUD over a decrypted set.
//
// Blob layout:
//
//	VERSION(1) || SALT(16) || CIPHERTEXT
//
// VERSION selects the KDF and cipher (see [crypto.SuiteFor]). The header
// (VERSION || SALT) is bound to the ciphertext as additional authenticated
// data, so tampering with any byte of the blob fails decryption.
package vault

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// HeaderSize is the number of bytes before the ciphertext.
const HeaderSize = 1 + crypto.SaltSize

// Codec encrypts vaults with one format version and decrypts any known one.
type Codec struct {
	write  crypto.Suite
	suites func(crypto.FormatVersion) (crypto.Suite, error)
}

// NewCodec returns a codec that writes blobs in the given format version.
func NewCodec(version crypto.FormatVersion) (*Codec, error) {
	suite, err := crypto.SuiteFor(version)
	if err != nil {
		return nil, fmt.Errorf("new codec: %w", err)
	}
	return &Codec{write: suite, suites: crypto.SuiteFor}, nil
}

// Version returns the format version written by Encrypt.
func (c *Codec) Version() crypto.FormatVersion {
	return c.write.Version
}

// Encrypt serializes v and seals it under a key derived from password and a
// fresh random salt.
func (c *Codec) Encrypt(v models.Vault, password string) ([]byte, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}

	plaintext, err := marshalVault(v)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(plaintext)

	key, err := c.write.KDF.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zero(key)

	header := make([]byte, 0, HeaderSize)
	header = append(header, byte(c.write.Version))
	header = append(header, salt...)

	sealed, err := c.write.Cipher.Seal(key, plaintext, header)
	if err != nil {
		return nil, fmt.Errorf("seal vault: %w", err)
	}

	return append(header, sealed...), nil
}

// Decrypt opens blob with password and parses the entries.
//
// Anything that prevents authentication (short blob, unknown version, wrong
// password, tampering) yields ErrWrongPasswordOrCorrupt. A blob that
// authenticates but holds invalid entries yields ErrCorruptStructure.
func (c *Codec) Decrypt(blob []byte, password string) (models.Vault, error) {
	if len(blob) < HeaderSize {
		return nil, fmt.Errorf("%w: blob is %d bytes", ErrWrongPasswordOrCorrupt, len(blob))
	}

	suite, err := c.suites(crypto.FormatVersion(blob[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPasswordOrCorrupt, err)
	}

	header, ciphertext := blob[:HeaderSize], blob[HeaderSize:]
	key, err := suite.KDF.DeriveKey(password, header[1:])
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer crypto.Zero(key)

	plaintext, err := suite.Cipher.Open(key, ciphertext, header)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthFailure) {
			return nil, ErrWrongPasswordOrCorrupt
		}
		return nil, fmt.Errorf("open vault: %w", err)
	}
	defer crypto.Zero(plaintext)

	return unmarshalVault(plaintext)
}

func marshalVault(v models.Vault) ([]byte, error) {
	if v == nil {
		v = models.NewVault()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal vault: %w", err)
	}
	return data, nil
}

func unmarshalVault(data []byte) (models.Vault, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var raw map[string]*models.VaultEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStructure, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after entries", ErrCorruptStructure)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: entries are null", ErrCorruptStructure)
	}

	v := make(models.Vault, len(raw))
	for name, entry := range raw {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: entry with empty name", ErrCorruptStructure)
		}
		if entry == nil {
			return nil, fmt.Errorf("%w: entry %q is null", ErrCorruptStructure, name)
		}
		e := *entry
		e.Name = name
		v[name] = e
	}
	return v, nil
}
