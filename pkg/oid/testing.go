package oid

import (
	"fmt"
	"testing"
)

// SequenceGenerator returns numbered OIDs in a predictable format.
// This generator is useful for tests when checking different objects.
type SequenceGenerator struct {
	count int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{count: 0}
}

func (g *SequenceGenerator) New() OID {
	g.count++
	return OID(fmt.Sprintf("%040d", g.count))
}

// UseSequence configures a predictable sequence of OIDs for the duration of a test.
func UseSequence(t *testing.T) {
	generator = NewSequenceGenerator()
	t.Cleanup(Reset)
}
