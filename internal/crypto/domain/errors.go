package domain

import (
	"github.com/allisson/lifetrack/internal/errors"
)

// Field encryption error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors.
// All of them are absorbed at the safe-decrypt boundary during batch reads;
// only direct codec callers (the write path) ever see them.
var (
	// ErrEmptyEncryptionSecret indicates the configured encryption secret is empty.
	ErrEmptyEncryptionSecret = errors.Wrap(errors.ErrInvalidInput, "empty encryption secret")

	// ErrInvalidPayloadFormat indicates the encrypted payload does not split
	// into exactly three non-empty nonce/tag/ciphertext segments, or a segment
	// has the wrong decoded length.
	ErrInvalidPayloadFormat = errors.Wrap(errors.ErrInvalidInput, "invalid payload format")

	// ErrInvalidPayloadHex indicates a payload segment is not valid hex.
	ErrInvalidPayloadHex = errors.Wrap(errors.ErrInvalidInput, "invalid payload hex")

	// ErrDecryptionFailed indicates an authentication failure during decryption.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext or tag has been tampered with
	//   - Corrupted encrypted data
	//
	// The specific cause is not disclosed to prevent information leakage.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
