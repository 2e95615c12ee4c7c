// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// aeadCipher implements [Cipher] on top of any cipher.AEAD constructor.
// The output layout is nonce || ciphertext || tag.
type aeadCipher struct {
	newAEAD func(key []byte) (cipher.AEAD, error)
}

// NewAESGCMCipher returns the format v1 [Cipher]: AES-256-GCM with a random
// 12-byte nonce.
func NewAESGCMCipher() Cipher {
	return &aeadCipher{newAEAD: newAESGCM}
}

// NewXChaCha20Poly1305Cipher returns the format v2 [Cipher]:
// XChaCha20-Poly1305 with a random 24-byte nonce.
func NewXChaCha20Poly1305Cipher() Cipher {
	return &aeadCipher{newAEAD: chacha20poly1305.NewX}
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [Cipher].
func (c *aeadCipher) Seal(key, plaintext, aad []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	out := make([]byte, nonceSize, nonceSize+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, out); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(out, out[:nonceSize], plaintext, aad), nil
}

// Open implements [Cipher].
func (c *aeadCipher) Open(key, ciphertext, aad []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	if len(ciphertext) < nonceSize+aead.Overhead() {
		return nil, ErrAuthFailure
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}
