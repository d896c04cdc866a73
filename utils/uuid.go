package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random identifier for a new aggregate. IDs are
// opaque strings everywhere in the engine; only ledger tie-breaking relies
// on them, and then only for determinism, not ordering semantics.
func GenerateID() string {
	return uuid.NewString()
}
