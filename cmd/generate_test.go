package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("default paths", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		out := env.run("generate")
		env.contains(out, "✔ CSS variables written to: "+defaultOutput)
		env.contains(out, "Categories processed: purple, gray")

		css := env.read(defaultOutput)
		env.contains(css, "/* CSS variables generated automatically from palette.jsonc */")
		env.contains(css, "  /* Purple colors */\n  --color-purple-plum: #673147;\n  --color-purple-lilac: #C8A2C8;\n")
		env.contains(css, "  /* Gray colors */\n  --color-gray-white: #FFFFFF;\n  --color-gray-black: #000000;\n")
		assert.True(t, strings.HasSuffix(css, "}\n"))
	})

	t.Run("explicit paths", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("brand.jsonc", `{"ink": {"dark": "#111111"}}`)

		env.run("generate", "--palette", "brand.jsonc", "--out", filepath.Join("public", "vars.css"))

		css := env.read(filepath.Join("public", "vars.css"))
		env.contains(css, "generated automatically from brand.jsonc")
		env.contains(css, "--color-ink-dark: #111111;")
	})

	t.Run("environment paths", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("p.jsonc", `{"ink": {"dark": "#111111"}}`)
		env.env = append(env.env, EnvPalette+"=p.jsonc", EnvOutput+"=o.css")

		env.run("generate")
		env.contains(env.read("o.css"), "--color-ink-dark")
	})

	t.Run("idempotent", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		env.run("generate")
		first := env.read(defaultOutput)
		env.run("generate")
		assert.Equal(t, first, env.read(defaultOutput))
	})

	t.Run("stdout", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		out := env.runStdout("generate", "--stdout")
		assert.True(t, strings.HasPrefix(out, "/* CSS variables"))
		assert.NoFileExists(t, filepath.Join(env.dir, defaultOutput))
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		var res struct {
			Output     string   `json:"output"`
			Categories []string `json:"categories"`
			Written    bool     `json:"written"`
		}
		require.NoError(t, json.Unmarshal([]byte(env.runStdout("generate", "-o", "json")), &res))
		assert.Equal(t, defaultOutput, res.Output)
		assert.Equal(t, []string{"purple", "gray"}, res.Categories)
		assert.True(t, res.Written)
	})
}

func TestGenerate_Check(t *testing.T) {
	env := newTestEnv(t).withPalette(testPalette)

	out, code := env.runCode("generate", "--check")
	assert.Equal(t, 1, code)
	env.contains(out, "(missing)")
	env.contains(out, "+   --color-purple-plum: #673147;")
	assert.NoFileExists(t, filepath.Join(env.dir, defaultOutput))

	env.run("generate")
	out = env.run("generate", "--check")
	env.contains(out, "is up to date")

	env.withPalette(strings.Replace(testPalette, "#673147", "#5A2B3F", 1))
	out, code = env.runCode("generate", "--check")
	assert.Equal(t, 1, code)
	env.contains(out, "-   --color-purple-plum: #673147;")
	env.contains(out, "+   --color-purple-plum: #5A2B3F;")
	env.contains(out, "stylesheet is out of date")
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("missing palette", func(t *testing.T) {
		env := newTestEnv(t)

		out, code := env.runCode("generate")
		assert.Equal(t, 1, code)
		env.contains(out, "✖ Error generating CSS variables: cannot read palette")
		assert.NoFileExists(t, filepath.Join(env.dir, defaultOutput))
	})

	t.Run("malformed palette", func(t *testing.T) {
		env := newTestEnv(t).withPalette(`{"purple": {"plum": "#673147",}}`)

		out, code := env.runCode("generate")
		assert.Equal(t, 1, code)
		env.contains(out, "malformed palette")
		assert.NoFileExists(t, filepath.Join(env.dir, defaultOutput))
	})

	t.Run("unterminated comment", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette + "\n/* open")

		out, code := env.runCode("generate")
		assert.Equal(t, 1, code)
		env.contains(out, "malformed palette")
		assert.NoFileExists(t, filepath.Join(env.dir, defaultOutput))
	})

	t.Run("unwritable output", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)
		env.write(filepath.Join("src", "styles"), "not a directory")

		out, code := env.runCode("generate")
		assert.Equal(t, 1, code)
		env.contains(out, "Error generating CSS variables")
	})

	t.Run("json error", func(t *testing.T) {
		env := newTestEnv(t)

		out, code := env.runCode("generate", "-o", "json")
		assert.Equal(t, 1, code)
		env.contains(out, `{"error":"generating CSS variables: cannot read palette`)
	})

	t.Run("arguments rejected", func(t *testing.T) {
		env := newTestEnv(t).withPalette(testPalette)

		_, code := env.runCode("generate", "extra")
		assert.Equal(t, 1, code)
	})
}
