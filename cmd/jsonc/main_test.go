// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const goodInput = `// Service settings.
{
  "name": "demo", // the service name
  "ports": [80, 443,],
  "debug": false,
  "limits": {"cpu": 1.5, "tags": null},
}
`

const badInput = `{
  "name": "demo",
  "ports": [80 443],
}
`

// writeFile writes text to a file in a temporary directory and returns its
// path.
func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

// run executes the command with args and returns its output and error
// output.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, eout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&eout)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--color=never"}, args...))
	err = cmd.Execute()
	return out.String(), eout.String(), err
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.jwcc", goodInput)
	bad := writeFile(t, "bad.jwcc", badInput)

	t.Run("Valid", func(t *testing.T) {
		out, _, err := run(t, "", "check", good)
		require.NoError(t, err)
		assert.Equal(t, good+": ok\n", out)
	})

	t.Run("Invalid", func(t *testing.T) {
		out, eout, err := run(t, "", "check", good, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 inputs are invalid")
		assert.Contains(t, out, good+": ok")
		assert.Contains(t, eout, "error: expected ',' or ']'")
		assert.Contains(t, eout, "--> "+bad+":3:16")
		assert.Contains(t, eout, `3 |   "ports": [80 443],`)
	})

	t.Run("Stdin", func(t *testing.T) {
		_, eout, err := run(t, "[1, 2", "--label", "piped", "check", "-q", "-")
		require.Error(t, err)
		assert.Contains(t, eout, "error: unexpected end of input")
		assert.Contains(t, eout, "--> piped:1:6")
	})

	t.Run("Missing", func(t *testing.T) {
		_, _, err := run(t, "", "check", filepath.Join(t.TempDir(), "nonesuch"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read input")
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, _, err := run(t, "", "check")
		require.Error(t, err)
	})
}

func TestFmt(t *testing.T) {
	good := writeFile(t, "good.jwcc", goodInput)

	t.Run("JSON", func(t *testing.T) {
		out, _, err := run(t, "", "fmt", good)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "demo", got["name"])
		assert.Equal(t, []any{80.0, 443.0}, got["ports"])
		assert.NotContains(t, out, "//")
		assert.True(t, strings.HasSuffix(out, "}\n"))
	})

	t.Run("Compact", func(t *testing.T) {
		out, _, err := run(t, "", "fmt", "--compact", "--sort", good)
		require.NoError(t, err)
		assert.Equal(t, `{"debug":false,"limits":{"cpu":1.5,"tags":null},"name":"demo","ports":[80,443]}`+"\n", out)
	})

	t.Run("JWCC", func(t *testing.T) {
		out, _, err := run(t, "", "fmt", "--jwcc", good)
		require.NoError(t, err)
		assert.Contains(t, out, "// Service settings.")
		assert.Contains(t, out, "// the service name")

		// The output must be accepted again.
		again := writeFile(t, "again.jwcc", out)
		_, _, err = run(t, "", "check", again)
		assert.NoError(t, err)
	})

	t.Run("Path", func(t *testing.T) {
		out, _, err := run(t, "", "fmt", "--compact", "--path", "limits", good)
		require.NoError(t, err)
		assert.Equal(t, `{"cpu":1.5,"tags":null}`+"\n", out)

		out, _, err = run(t, "", "fmt", "--path", ".ports[-1]", good)
		require.NoError(t, err)
		assert.Equal(t, "443\n", out)

		out, _, err = run(t, "", "fmt", "--jwcc", "--indent", "\t", "--path", "limits", good)
		require.NoError(t, err)
		assert.Equal(t, "{\n\t\"cpu\":  1.5,\n\t\"tags\": null,\n}\n", out)
	})

	t.Run("BadPath", func(t *testing.T) {
		_, _, err := run(t, "", "fmt", "--path", "ports[", good)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid path")

		_, _, err = run(t, "", "fmt", "--path", "nonesuch", good)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `key "nonesuch" not found`)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, eout, err := run(t, "", "fmt", writeFile(t, "bad.jwcc", badInput))
		require.Error(t, err)
		assert.Contains(t, eout, "error:")
	})
}

func TestYAML(t *testing.T) {
	good := writeFile(t, "good.jwcc", goodInput)

	out, _, err := run(t, "", "yaml", good)
	require.NoError(t, err)
	assert.Contains(t, out, "# Service settings.")
	assert.Contains(t, out, "# the service name")

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"name":   "demo",
		"ports":  []any{80, 443},
		"debug":  false,
		"limits": map[string]any{"cpu": 1.5, "tags": nil},
	}, got)

	plain, _, err := run(t, "", "yaml", "--no-comments", good)
	require.NoError(t, err)
	assert.NotContains(t, plain, "#")

	sub, _, err := run(t, "", "yaml", "--path", "limits", good)
	require.NoError(t, err)
	var limits map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(sub), &limits))
	assert.Equal(t, map[string]any{"cpu": 1.5, "tags": nil}, limits)
}

func TestColorFlag(t *testing.T) {
	_, _, err := run(t, "", "--color=sometimes", "check", writeFile(t, "x.json", "1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --color")
}

func TestYAMLComment(t *testing.T) {
	assert.Equal(t, "", yamlComment())
	assert.Equal(t, "", yamlComment(""))
	assert.Equal(t, "# a\n# b", yamlComment("// a", "", "/* b */"))
	assert.Equal(t, "# x\n#\n# y", yamlComment("/* x\n\n   y */"))
}
