package domain

// KeySize is the required size of the field encryption key in bytes (AES-256).
const KeySize = 32

// Key is the immutable symmetric key protecting sensitive fields at rest.
//
// The key is derived once at process start from the configured secret and is
// passed by value into the codec at construction. It must never be logged or
// serialized outside of memory. A Key is safe for concurrent use: it is never
// mutated after construction.
type Key struct {
	material [KeySize]byte
}

// KeyFromSecret derives a Key from a configuration secret.
//
// The secret is interpreted as raw bytes, right-padded with '0' characters or
// truncated so the result is exactly 32 bytes. This matches the on-disk data
// written by earlier deployments, so changing the normalization would make
// existing ciphertexts undecryptable.
func KeyFromSecret(secret string) (Key, error) {
	if secret == "" {
		return Key{}, ErrEmptyEncryptionSecret
	}

	var k Key
	b := []byte(secret)
	for i := range KeySize {
		if i < len(b) {
			k.material[i] = b[i]
		} else {
			k.material[i] = '0'
		}
	}
	return k, nil
}

// Bytes returns a copy of the raw key material.
// Callers should zero the copy after use with Zero.
func (k Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.material[:])
	return out
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
