package oid

import (
	"strings"

	"github.com/google/uuid"
)

// OID is a 40-character unique object identifier (same length as Git hashes).
type OID string

const Nil = OID("")

func (o OID) IsNil() bool {
	return string(o) == ""
}

func (o OID) String() string {
	return string(o)
}

/* Constructors */

func New() OID {
	return generator.New()
}

// MustParse parses an OID or panic if the OID format is not valid.
func MustParse(s string) OID {
	if len(s) != 40 {
		panic("Invalid OID")
	}
	return OID(s)
}

// ParseOrNil parses an OID or returns Nil.
func ParseOrNil(s string) OID {
	if len(s) != 40 {
		return Nil
	}
	return OID(s)
}

/* Generator */

var generator Generator = &UniqueGenerator{}

type Generator interface {
	New() OID
}

// Reset restores the original unique OID generator.
// Useful in tests with a defer after overriding the default generator.
func Reset() {
	generator = &UniqueGenerator{}
}

// UniqueGenerator is a production-grade Generator returning unique, random OIDs.
type UniqueGenerator struct{}

// New generates a new unique OID on every call.
func (g *UniqueGenerator) New() OID {
	// Two UUIDv4 without dashes, truncated to the Git hash length.
	oid := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")[0:40]
	return OID(oid)
}
