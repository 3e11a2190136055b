// Package service provides the field-level authenticated encryption codec.
// Implements AES-256-GCM over the "nonce:tag:ciphertext" hex payload format
// and the safe-decrypt wrapper used by batch reads.
package service

// Codec defines the interface for field-level symmetric encryption of
// opaque strings. Implementations know nothing about business schemas.
type Codec interface {
	// Encrypt encrypts plaintext with a fresh random nonce and returns the
	// serialized payload.
	Encrypt(plaintext string) (string, error)

	// Decrypt parses and decrypts a serialized payload.
	// Fails when the payload is malformed or authentication fails.
	Decrypt(payload string) (string, error)
}

// SafeDecryptor defines the failure-isolating decrypt used when processing
// batches of records of unknown provenance. It never fails; malformed or
// tampered payloads yield a fixed sentinel string instead.
type SafeDecryptor interface {
	SafeDecrypt(payload string) string
}
