package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/lifetrack/internal/crypto/domain"
)

// AESGCMCodec implements the Codec interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption, combining the confidentiality of
// AES with the authenticity of GMAC: tampering with the stored payload is
// detected at decrypt time.
//
// Wire compatibility:
//   - 16-byte nonce, randomly generated per encryption
//   - 16-byte authentication tag, stored as its own payload segment
//   - payload serialized as "nonce:tag:ciphertext", each segment hex-encoded
//
// Thread safety:
//
//	The codec is stateless after construction and safe for concurrent use
//	from multiple goroutines. Each encryption generates a unique nonce
//	independently; nonce reuse under the same key would break both
//	confidentiality and authenticity, so callers must never supply one.
type AESGCMCodec struct {
	aead cipher.AEAD
}

// NewAESGCMCodec creates a codec bound to the given field encryption key.
//
// The key is the process-wide immutable key derived from configuration; the
// codec holds the only expanded copy of the key schedule, so constructing it
// once at startup and sharing the instance is the intended usage.
func NewAESGCMCodec(key cryptoDomain.Key) (*AESGCMCodec, error) {
	keyBytes := key.Bytes()
	defer cryptoDomain.Zero(keyBytes)

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, cryptoDomain.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCodec{aead: aead}, nil
}

// Encrypt encrypts plaintext and serializes the result as "nonce:tag:ciphertext".
//
// A fresh 16-byte nonce is generated from crypto/rand on every call, so
// encrypting the same plaintext twice yields two different payloads.
func (c *AESGCMCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext; the payload format stores the
	// tag as a separate segment.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	boundary := len(sealed) - cryptoDomain.TagSize

	payload := cryptoDomain.EncryptedPayload{
		Nonce:      nonce,
		Tag:        sealed[boundary:],
		Ciphertext: sealed[:boundary],
	}
	return payload.String(), nil
}

// Decrypt parses a serialized payload and returns the plaintext.
//
// Fails with a payload parse error when the payload does not decode into
// exactly three valid segments, and with ErrDecryptionFailed when tag
// verification fails (tamper, corruption, or wrong key).
func (c *AESGCMCodec) Decrypt(payload string) (string, error) {
	parsed, err := cryptoDomain.ParseEncryptedPayload(payload)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(parsed.Ciphertext)+len(parsed.Tag))
	sealed = append(sealed, parsed.Ciphertext...)
	sealed = append(sealed, parsed.Tag...)

	plaintext, err := c.aead.Open(nil, parsed.Nonce, sealed, nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
