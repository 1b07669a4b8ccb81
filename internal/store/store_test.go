package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextHash(t *testing.T) {
	a := textHash("vacancy text")
	b := textHash("vacancy text")
	c := textHash("different text")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestTextHashEmpty(t *testing.T) {
	assert.Len(t, textHash(""), 64)
}
