package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("clean palette", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		out := env.run("verify")
		env.contains(out, "Palette verification")
		env.contains(out, "Total colors: 4")
		env.contains(out, "Categories: purple, gray")
		env.contains(out, "✔ Contrast purple-plum/gray-white: 9.97 (WCAG AA met)")
		env.contains(out, "✔ Palette verified with no problems!")
	})

	t.Run("issues do not fail the run", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{
  "purple": {"plum": "#777777", "wine": "wine"},
  "gray": {"white": "#FFFFFF", "paper": "#FFFFFF", "snow": "#ffffff"}
}`)

		out, code := env.runCode("verify")
		assert.Equal(t, 0, code)
		env.contains(out, "⚠ Problems found:")
		env.contains(out, "✖ Invalid color: purple-wine = wine")
		env.contains(out, "⚠ Duplicate color: gray-paper and gray-white use #FFFFFF")
		env.contains(out, "⚠ Insufficient contrast between purple-plum and gray-white: 4.48 (minimum 4.5 for WCAG AA)")
		assert.NotContains(t, out, "gray-snow")
		assert.NotContains(t, out, "WCAG AA met")
	})

	t.Run("strict", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"gray": {"white": "#FFFFFF", "paper": "#FFFFFF"}}`)

		out, code := env.runCode("verify", "--strict")
		assert.Equal(t, 1, code)
		env.contains(out, "Duplicate color")
		env.contains(out, "palette has issues: 1 found")
	})

	t.Run("no contrast line without references", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"gray": {"white": "#FFFFFF"}}`)

		out := env.run("verify")
		assert.NotContains(t, out, "ontrast")
	})

	t.Run("configured contrast pair", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"brand": {"ink": "#777777"}, "base": {"paper": "#FFFFFF"}}`)
		env.run("config", "--local", "contrast.foreground", "brand.ink")
		env.run("config", "--local", "contrast.background", "base.paper")
		env.run("config", "--local", "contrast.min_ratio", "3")

		out := env.run("verify")
		env.contains(out, "Contrast brand-ink/base-paper: 4.48 (WCAG AA met)")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		var r struct {
			Total      int      `json:"total"`
			Categories []string `json:"categories"`
			Issues     []any    `json:"issues"`
			Contrast   struct {
				Ratio float64 `json:"ratio"`
				Pass  bool    `json:"pass"`
			} `json:"contrast"`
		}
		require.NoError(t, json.Unmarshal([]byte(env.runStdout("verify", "-o", "json")), &r))
		assert.Equal(t, 4, r.Total)
		assert.Empty(t, r.Issues)
		assert.Equal(t, 9.97, r.Contrast.Ratio)
		assert.True(t, r.Contrast.Pass)
	})
}

func TestVerify_Errors(t *testing.T) {
	t.Run("missing palette", func(t *testing.T) {
		env := newTestEnv(t)

		out, code := env.runCode("verify")
		assert.Equal(t, 1, code)
		env.contains(out, "✖ Error verifying palette: cannot read palette")
	})

	t.Run("malformed palette", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"purple": `)

		out, code := env.runCode("verify")
		assert.Equal(t, 1, code)
		env.contains(out, "malformed palette")
	})

	t.Run("unterminated comment", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"gray": {"white": "#FFFFFF"}} /* open`)

		out, code := env.runCode("verify")
		assert.Equal(t, 1, code)
		env.contains(out, "malformed palette")
	})

	t.Run("top level not an object", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`["#FFFFFF"]`)

		out, code := env.runCode("verify")
		assert.Equal(t, 1, code)
		env.contains(out, "palette must be a JSON object")
	})
}
