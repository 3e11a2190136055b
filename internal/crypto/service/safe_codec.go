package service

// DecryptionSentinel is the fixed placeholder returned by SafeDecrypt in place
// of a value that could not be decrypted. Aggregation code detects it and
// excludes the row's contribution from numeric sums while still surfacing the
// entry for display.
const DecryptionSentinel = "[decryption error]"

// SafeCodec wraps a Codec with failure isolation for batch reads.
//
// One malformed or foreign-keyed historical row must never abort an aggregate
// listing of N rows, so SafeDecrypt converts every decryption failure into
// DecryptionSentinel instead of propagating it. This is the only place where
// decryption errors are deliberately absorbed; all batch-read call sites must
// go through SafeCodec rather than the raw codec.
type SafeCodec struct {
	codec Codec
}

// NewSafeCodec creates a SafeCodec wrapping the given codec.
func NewSafeCodec(codec Codec) *SafeCodec {
	return &SafeCodec{codec: codec}
}

// SafeDecrypt decrypts a payload, returning DecryptionSentinel on any failure.
func (s *SafeCodec) SafeDecrypt(payload string) string {
	plaintext, err := s.codec.Decrypt(payload)
	if err != nil {
		return DecryptionSentinel
	}
	return plaintext
}
