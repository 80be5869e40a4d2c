// Package idgen generates order identifiers: a v4 UUID with the dashes
// stripped, giving a 32-char lowercase hex string with 122 bits of entropy.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// GenID returns a fresh 32-char lowercase hex identifier with no separators.
func GenID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
