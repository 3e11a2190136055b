package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// NonceSize is the size of the GCM nonce in bytes. The 16-byte nonce is
	// retained for compatibility with payloads written by earlier deployments.
	NonceSize = 16

	// TagSize is the size of the GCM authentication tag in bytes.
	TagSize = 16

	// payloadSeparator joins the hex-encoded payload segments. Hex encoding
	// cannot produce a colon, so the separator is unambiguous.
	payloadSeparator = ":"
)

// EncryptedPayload is the parsed form of an encrypted field value.
//
// The wire format is "nonce:tag:ciphertext" with each segment hex-encoded.
// Payloads are created on write, read once during decryption, and never
// mutated in place.
type EncryptedPayload struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// ParseEncryptedPayload parses the string representation of an encrypted field.
//
// Returns ErrInvalidPayloadFormat unless splitting on the separator yields
// exactly three segments, ErrInvalidPayloadHex if any segment is not valid
// hex, and ErrInvalidPayloadFormat if the nonce or tag has the wrong length.
// The ciphertext segment may be empty: encrypting an empty string produces a
// zero-length ciphertext under GCM.
func ParseEncryptedPayload(content string) (EncryptedPayload, error) {
	parts := strings.Split(content, payloadSeparator)
	if len(parts) != 3 {
		return EncryptedPayload{}, fmt.Errorf(
			"%w: expected format 'nonce:tag:ciphertext', got %d parts",
			ErrInvalidPayloadFormat,
			len(parts),
		)
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return EncryptedPayload{}, fmt.Errorf("%w: nonce: %v", ErrInvalidPayloadHex, err)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return EncryptedPayload{}, fmt.Errorf("%w: tag: %v", ErrInvalidPayloadHex, err)
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return EncryptedPayload{}, fmt.Errorf("%w: ciphertext: %v", ErrInvalidPayloadHex, err)
	}

	if len(nonce) != NonceSize {
		return EncryptedPayload{}, fmt.Errorf(
			"%w: nonce must be %d bytes, got %d", ErrInvalidPayloadFormat, NonceSize, len(nonce),
		)
	}
	if len(tag) != TagSize {
		return EncryptedPayload{}, fmt.Errorf(
			"%w: tag must be %d bytes, got %d", ErrInvalidPayloadFormat, TagSize, len(tag),
		)
	}

	return EncryptedPayload{Nonce: nonce, Tag: tag, Ciphertext: ciphertext}, nil
}

// String serializes the payload to its wire format "nonce:tag:ciphertext".
//
// Round-trips with ParseEncryptedPayload:
//
//	original := EncryptedPayload{Nonce: nonce, Tag: tag, Ciphertext: ct}
//	parsed, _ := ParseEncryptedPayload(original.String())
//	// parsed equals original
func (p EncryptedPayload) String() string {
	return strings.Join([]string{
		hex.EncodeToString(p.Nonce),
		hex.EncodeToString(p.Tag),
		hex.EncodeToString(p.Ciphertext),
	}, payloadSeparator)
}
