// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of every KDF salt, in bytes.
	SaltSize = 16

	// KeySize is the length of every derived key, in bytes (256 bits).
	KeySize = 32

	// PBKDF2Iterations is the PBKDF2-HMAC-SHA256 work factor of format v1.
	PBKDF2Iterations = 200_000
)

// pbkdf2Deriver derives keys with PBKDF2-HMAC-SHA256.
type pbkdf2Deriver struct {
	iterations int
}

// NewPBKDF2Deriver returns the format v1 [KeyDeriver]:
// PBKDF2-HMAC-SHA256 with [PBKDF2Iterations] iterations.
func NewPBKDF2Deriver() KeyDeriver {
	return newPBKDF2Deriver(PBKDF2Iterations)
}

func newPBKDF2Deriver(iterations int) *pbkdf2Deriver {
	return &pbkdf2Deriver{iterations: iterations}
}

// DeriveKey implements [KeyDeriver].
func (d *pbkdf2Deriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltLength, len(salt), SaltSize)
	}

	return pbkdf2.Key([]byte(password), salt, d.iterations, KeySize, sha256.New), nil
}

// argon2Deriver derives keys with Argon2id.
type argon2Deriver struct {
	// Argon2id tuning parameters. They are part of the on-disk format and
	// must not change for an existing format version.
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2idDeriver returns the format v2 [KeyDeriver]: Argon2id with
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewArgon2idDeriver() KeyDeriver {
	return newArgon2idDeriver(1, 64*1024, 4)
}

func newArgon2idDeriver(time, memoryKiB uint32, threads uint8) *argon2Deriver {
	return &argon2Deriver{
		time:    time,
		memory:  memoryKiB,
		threads: threads,
	}
}

// DeriveKey implements [KeyDeriver].
func (d *argon2Deriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltLength, len(salt), SaltSize)
	}

	return argon2.IDKey([]byte(password), salt, d.time, d.memory, d.threads, KeySize), nil
}
