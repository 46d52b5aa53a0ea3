package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers(t *testing.T) {
	prev := Colour()
	defer SetColour(prev)

	SetColour(false)
	assert.False(t, Colour())
	assert.Equal(t, "✔", Success())
	assert.Equal(t, "✖", Error())
	assert.Equal(t, "⚠", Warning())

	SetColour(true)
	assert.True(t, Colour())
	assert.Contains(t, Success(), "\x1b[")
	assert.Contains(t, Success(), "✔")
}
