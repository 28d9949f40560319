package projects

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewPublicID mints the externally visible project identifier, distinct from
// the row's internal key. Format: "proj_hexstring".
func NewPublicID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("proj_%s", hex.EncodeToString(b)), nil
}
