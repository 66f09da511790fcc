package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "0 C-bills", formatCredits(0))
	assert.Equal(t, "999 C-bills", formatCredits(999))
	assert.Equal(t, "1,000 C-bills", formatCredits(1000))
	assert.Equal(t, "-12,345,678 C-bills", formatCredits(-12345678))
}

func TestMaskPassword(t *testing.T) {
	masked := maskPassword("postgres://sl:secret@db:5432/starlane")
	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "db:5432/starlane")
	assert.Equal(t, "postgres://db/starlane", maskPassword("postgres://db/starlane"))
}
