package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/lifetrack/internal/crypto/domain"
)

// RunCreateEncryptionKey generates a secret for field encryption and writes
// it in .env format. The secret is 32 base64 characters, so the derived key
// uses it verbatim with no padding. Key material is zeroed after encoding.
func RunCreateEncryptionKey(w io.Writer) error {
	// 24 random bytes encode to exactly 32 base64 characters
	material := make([]byte, 24)
	if _, err := rand.Read(material); err != nil {
		return fmt.Errorf("failed to generate key material: %w", err)
	}

	secret := base64.StdEncoding.EncodeToString(material)
	cryptoDomain.Zero(material)

	fmt.Fprintln(w, "# Add this to your .env file. Changing it makes existing ciphertexts undecryptable.")
	fmt.Fprintf(w, "ENCRYPTION_KEY=%s\n", secret)
	return nil
}
