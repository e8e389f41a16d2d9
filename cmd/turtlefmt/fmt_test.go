package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) {
	t.Helper()
	old := cfg
	cfg = cliConfig{IndentWidth: 4, Color: false}
	t.Cleanup(func() { cfg = old })
}

func TestFormatFile_Stdout(t *testing.T) {
	testConfig(t)

	path := filepath.Join(t.TempDir(), "data.ttl")
	require.NoError(t, os.WriteFile(path, []byte("<http://ex.org/a>\na <http://ex.org/T> .\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, formatFile(context.Background(), &out, path, false))
	require.Equal(t, "<http://ex.org/a>\n    a <http://ex.org/T> .\n", out.String())

	// Source untouched without -w.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<http://ex.org/a>\na <http://ex.org/T> .\n", string(content))
}

func TestFormatFile_Write(t *testing.T) {
	testConfig(t)

	path := filepath.Join(t.TempDir(), "data.ttl")
	require.NoError(t, os.WriteFile(path, []byte("<http://ex.org/a>\na <http://ex.org/T> .\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, formatFile(context.Background(), &out, path, true))
	require.Empty(t, out.String(), "-w must not print to stdout")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<http://ex.org/a>\n    a <http://ex.org/T> .\n", string(content))
}

func TestFormatFile_Markdown(t *testing.T) {
	testConfig(t)

	path := filepath.Join(t.TempDir(), "doc.md")
	md := "# T\n\n```turtle\n<http://ex.org/a>\na <http://ex.org/T> .\n```\n"
	require.NoError(t, os.WriteFile(path, []byte(md), 0o644))

	var out bytes.Buffer
	require.NoError(t, formatFile(context.Background(), &out, path, false))
	require.Contains(t, out.String(), "\n    a <http://ex.org/T> .\n")
	require.Contains(t, out.String(), "# T")
}

func TestFormatFile_Missing(t *testing.T) {
	testConfig(t)

	var out bytes.Buffer
	err := formatFile(context.Background(), &out, filepath.Join(t.TempDir(), "absent.ttl"), false)
	require.Error(t, err)
}

func TestIsMarkdownFile(t *testing.T) {
	require.True(t, isMarkdownFile("a.md"))
	require.True(t, isMarkdownFile("a.MARKDOWN"))
	require.False(t, isMarkdownFile("a.ttl"))
}

func TestRenderSpans_NoStyles(t *testing.T) {
	testConfig(t)

	// Rendering must preserve every input byte in order.
	text := "<http://ex.org/a> a <http://ex.org/T> ."
	rendered := renderSpans(text, nil)
	require.Equal(t, text, rendered)
}
