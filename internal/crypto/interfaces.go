package crypto

// KeyDeriver turns a password and a salt into a fixed-length symmetric key.
//
// Implementations are deliberately slow and must be pure: the same
// (password, salt) pair always yields the same key, and the running time does
// not depend on whether the password is the right one. Correctness of the
// password is established later by [Cipher.Open].
type KeyDeriver interface {
	// DeriveKey returns a KeySize-byte key. salt must be SaltSize bytes.
	DeriveKey(password string, salt []byte) ([]byte, error)
}

// Cipher is an authenticated encryption scheme.
//
// Seal draws a fresh random nonce on every call and binds it into the
// returned ciphertext, so sealing identical plaintext twice under the same
// key yields different outputs. Open fails with [ErrAuthFailure] when the
// key is wrong, the ciphertext was truncated or modified, or aad differs
// from the value used when sealing.
type Cipher interface {
	Seal(key, plaintext, aad []byte) ([]byte, error)
	Open(key, ciphertext, aad []byte) ([]byte, error)
}
