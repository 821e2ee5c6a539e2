package oid_test

import (
	"testing"

	"github.com/julien-sobczak/the-noteformatter/pkg/oid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := oid.New()
	b := oid.New()

	assert.Len(t, a.String(), 40)
	assert.Len(t, b.String(), 40)
	assert.NotEqual(t, a, b)
}

func TestParse(t *testing.T) {
	assert.Panics(t, func() {
		oid.MustParse("too-short")
	})

	assert.Equal(t, oid.Nil, oid.ParseOrNil("too-short"))
	assert.True(t, oid.ParseOrNil("x").IsNil())

	value := "0123456789012345678901234567890123456789"
	assert.Equal(t, value, oid.MustParse(value).String())
}

func TestUseSequence(t *testing.T) {
	oid.UseSequence(t)

	assert.Equal(t, oid.OID("0000000000000000000000000000000000000001"), oid.New())
	assert.Equal(t, oid.OID("0000000000000000000000000000000000000002"), oid.New())
}
