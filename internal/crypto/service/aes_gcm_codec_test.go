package service

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/lifetrack/internal/crypto/domain"
)

func newTestCodec(t *testing.T) *AESGCMCodec {
	t.Helper()
	key, err := cryptoDomain.KeyFromSecret("test-encryption-secret")
	require.NoError(t, err)
	codec, err := NewAESGCMCodec(key)
	require.NoError(t, err)
	return codec
}

func TestAESGCMCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	plaintexts := []string{
		"1250.50",
		"grocery shopping at the corner store",
		"",
		"räksmörgås 🦐",
		strings.Repeat("long plaintext ", 100),
	}

	for _, plaintext := range plaintexts {
		t.Run(plaintext, func(t *testing.T) {
			payload, err := codec.Encrypt(plaintext)
			require.NoError(t, err)

			decrypted, err := codec.Decrypt(payload)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		})
	}
}

func TestAESGCMCodec_EmptyPlaintext(t *testing.T) {
	codec := newTestCodec(t)

	payload, err := codec.Encrypt("")
	require.NoError(t, err)

	// Zero-length plaintext seals to a zero-length ciphertext, leaving the
	// last payload segment empty.
	parts := strings.Split(payload, ":")
	require.Len(t, parts, 3)
	assert.Empty(t, parts[2])

	decrypted, err := codec.Decrypt(payload)
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestAESGCMCodec_PayloadFormat(t *testing.T) {
	codec := newTestCodec(t)

	payload, err := codec.Encrypt("450.00")
	require.NoError(t, err)

	parts := strings.Split(payload, ":")
	require.Len(t, parts, 3)

	nonce, err := hex.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, nonce, cryptoDomain.NonceSize)

	tag, err := hex.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, tag, cryptoDomain.TagSize)

	_, err = hex.DecodeString(parts[2])
	require.NoError(t, err)
}

func TestAESGCMCodec_NonceUniqueness(t *testing.T) {
	codec := newTestCodec(t)

	first, err := codec.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := codec.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstNonce := strings.Split(first, ":")[0]
	secondNonce := strings.Split(second, ":")[0]
	assert.NotEqual(t, firstNonce, secondNonce)
}

func TestAESGCMCodec_TamperDetection(t *testing.T) {
	codec := newTestCodec(t)

	payload, err := codec.Encrypt("sensitive amount")
	require.NoError(t, err)
	parts := strings.Split(payload, ":")

	flipBit := func(hexSegment string) string {
		raw, err := hex.DecodeString(hexSegment)
		require.NoError(t, err)
		raw[0] ^= 0x01
		return hex.EncodeToString(raw)
	}

	t.Run("flipped ciphertext bit fails authentication", func(t *testing.T) {
		tampered := strings.Join([]string{parts[0], parts[1], flipBit(parts[2])}, ":")
		_, err := codec.Decrypt(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("flipped tag bit fails authentication", func(t *testing.T) {
		tampered := strings.Join([]string{parts[0], flipBit(parts[1]), parts[2]}, ":")
		_, err := codec.Decrypt(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("flipped nonce bit fails authentication", func(t *testing.T) {
		tampered := strings.Join([]string{flipBit(parts[0]), parts[1], parts[2]}, ":")
		_, err := codec.Decrypt(tampered)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestAESGCMCodec_Decrypt_InvalidPayloads(t *testing.T) {
	codec := newTestCodec(t)

	t.Run("malformed payload", func(t *testing.T) {
		_, err := codec.Decrypt("not:a-payload")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPayloadFormat)
	})

	t.Run("non-hex payload", func(t *testing.T) {
		payload, err := codec.Encrypt("value")
		require.NoError(t, err)
		_, err = codec.Decrypt("zz" + payload[2:])
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidPayloadHex)
	})

	t.Run("payload encrypted with a different key", func(t *testing.T) {
		otherKey, err := cryptoDomain.KeyFromSecret("another-secret")
		require.NoError(t, err)
		otherCodec, err := NewAESGCMCodec(otherKey)
		require.NoError(t, err)

		payload, err := otherCodec.Encrypt("value")
		require.NoError(t, err)

		_, err = codec.Decrypt(payload)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}
