// Package uuid generates record identifiers: time-ordered UUIDv7 values for
// new rows and name-based values for entries that must be reproducible.
package uuid

import (
	"strings"

	googleuuid "github.com/google/uuid"
)

// ledgerNamespace scopes name-based ids derived from ledger keys.
var ledgerNamespace = googleuuid.MustParse("6f1c3b0e-8a4d-4f57-9a51-3c2f6e0d7b11")

// New generates a new UUIDv7 based on the current timestamp.
// UUIDv7 is time-ordered and suitable for use as database primary keys.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Derive returns a stable UUIDv5 for the given key parts. The same parts
// always yield the same id.
func Derive(parts ...string) string {
	return googleuuid.NewSHA1(ledgerNamespace, []byte(strings.Join(parts, "|"))).String()
}

// Parse validates and parses a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
