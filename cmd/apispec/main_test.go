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
)

const manifest = `
info:
  title: Widgets
  version: 2.0.0
routes:
  - path: /api/widgets
    method: GET
    responseSchema: Widget
    responseTypeIsArray: true
  - path: /api/widgets
    method: POST
    requestBodySchema: WidgetInput
    responseSchema: Widget
  - path: /api/widgets/{id}
    method: GET
    responseSchema: Widget
  - path: /api/widgets
    method: OPTIONS
schemas:
  Widget:
    type: object
    properties:
      id:
        type: string
  WidgetInput:
    type: object
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "apispec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateCommand(t *testing.T) {
	t.Run("writes json", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, manifest)
		out := filepath.Join(dir, "openapi.json")

		stdout, err := run(t, "generate", "-f", in, "-o", out, "--strict", "--verify")
		require.NoError(t, err)
		assert.Contains(t, stdout, "2 paths, 2 schemas")

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, map[string]any{"title": "Widgets", "version": "2.0.0"}, doc["info"])

		paths := doc["paths"].(map[string]any)
		assert.Contains(t, paths, "/widgets")
		assert.Contains(t, paths, "/widgets/{id}")
		assert.NotContains(t, paths["/widgets"], "options")
	})

	t.Run("default manifest and output in working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, manifest)
		testChdir(t, dir)

		_, err := run(t, "generate")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "openapi.json"))
	})

	t.Run("writes yaml", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, manifest)
		out := filepath.Join(dir, "openapi.yaml")

		_, err := run(t, "generate", "-f", in, "-o", out, "--verify")
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "openapi: 3.0.0\n"))
	})

	t.Run("flag overrides", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, manifest)
		out := filepath.Join(dir, "openapi.json")

		_, err := run(t, "generate", "-f", in, "-o", out, "--prefix", "-", "--title", "Override", "--version", "9.9.9")
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, map[string]any{"title": "Override", "version": "9.9.9"}, doc["info"])
		assert.Contains(t, doc["paths"], "/api/widgets")
	})

	t.Run("strict rejects unknown schema", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, "routes:\n  - path: /x\n    method: GET\n    responseSchema: Missing\n")
		out := filepath.Join(dir, "openapi.json")

		_, err := run(t, "generate", "-f", in, "-o", out, "--strict")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown schema name")
		assert.NoFileExists(t, out)
	})

	t.Run("verify rejects dangling reference", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, "routes:\n  - path: /x\n    method: GET\n    responseSchema: Missing\n")
		out := filepath.Join(dir, "openapi.json")

		_, err := run(t, "generate", "-f", in, "-o", out, "--verify")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid openapi document")
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		dir := t.TempDir()
		in := writeManifest(t, dir, manifest)

		stdout, err := run(t, "generate", "-f", in, "-o", filepath.Join(dir, "openapi.json"), "-v")
		require.NoError(t, err)
		assert.Contains(t, stdout, "skipping preflight route")
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := run(t, "generate", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeManifest(t, dir, manifest)
	out := filepath.Join(dir, "openapi.json")

	_, err := run(t, "generate", "-f", in, "-o", out)
	require.NoError(t, err)

	stdout, err := run(t, "verify", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")

	_, err = run(t, "verify")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"openapi":"3.0.0"}`), 0o644))
	_, err = run(t, "verify", bad)
	assert.Error(t, err)
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
