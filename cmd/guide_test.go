package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("guide")
	env.contains(out, "# palette")

	out = env.run("guide", "format")
	env.contains(out, "Categories and shades are processed in the order")

	out, code := env.runCode("guide", "nope")
	assert.Equal(t, 1, code)
	env.contains(out, `guide "nope" not found`)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")
}
