package gpart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	// In a plain checkout (no GitHub archive substitution) this is "dev".
	assert.Equal(t, "dev", v)
}
