package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/lxd-profile/internal/document"
	"github.com/cameronsjo/lxd-profile/internal/ui"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// setHome points HOME at a fresh directory and disables the homedir cache.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "template.yaml", "config:\n  boot.autostart: \"1\"\n")

	v, err := New(ui.Discard(), false).Load(path, "template")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"config": map[string]any{"boot.autostart": "1"},
	}, v.Interface())
}

func TestLoad_Inline(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   any
	}{
		{name: "empty mapping", source: "{}", want: map[string]any{}},
		{name: "flow mapping", source: "{config: {limits.cpu: '2'}}", want: map[string]any{
			"config": map[string]any{"limits.cpu": "2"},
		}},
		{name: "block sequence", source: "- a\n- b\n", want: []any{"a", "b"}},
		{name: "missing path is a plain string", source: "/does/not/exist.yaml", want: "/does/not/exist.yaml"},
		{name: "empty source", source: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(ui.Discard(), false).Load(tt.source, "update")
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestLoad_JSONC(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "update.jsonc", `{
  // override the cpu limit
  "config": {
    "limits.cpu": "4", /* four cores */
  },
}`)

	v, err := New(ui.Discard(), false).Load(path, "update")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"config": map[string]any{"limits.cpu": "4"},
	}, v.Interface())
}

func TestLoad_HomeDirectory(t *testing.T) {
	home := setHome(t)
	writeFile(t, home, "profile.yaml", "description: from home\n")

	v, err := New(ui.Discard(), false).Load("~/profile.yaml", "template")
	require.NoError(t, err)

	desc, ok := v.Get("description")
	require.True(t, ok)
	assert.Equal(t, "from home", desc.Text())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed inline fails", func(t *testing.T) {
		_, err := New(ui.Discard(), false).Load("a: [1, 2", "update")
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.yaml", "a: [1, 2\n")
		_, err := New(ui.Discard(), false).Load(path, "template")
		assert.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("multi-document file fails", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "multi.yaml", "a: 1\n---\nb: 2\n")
		_, err := New(ui.Discard(), false).Load(path, "template")
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, document.ErrMultipleDocuments)
	})

	t.Run("multi-document inline skipped", func(t *testing.T) {
		var buf bytes.Buffer

		v, err := New(ui.New(&buf, false), true).Load("a: 1\n---\nb: 2\n", "update")
		require.NoError(t, err)
		assert.True(t, v.IsAbsent())
		assert.Contains(t, buf.String(), "update is not valid YAML, skipping")
	})

	t.Run("skip errors returns absent and warns", func(t *testing.T) {
		var buf bytes.Buffer
		path := writeFile(t, t.TempDir(), "bad.yaml", "a: [1, 2\n")

		v, err := New(ui.New(&buf, false), true).Load(path, "template")
		require.NoError(t, err)
		assert.True(t, v.IsAbsent())
		assert.Contains(t, buf.String(), path+" is not a valid YAML file, skipping")
	})

	t.Run("skip errors inline", func(t *testing.T) {
		var buf bytes.Buffer

		v, err := New(ui.New(&buf, false), true).Load("a: [1, 2", "update")
		require.NoError(t, err)
		assert.Equal(t, document.KindAbsent, v.Kind())
		assert.Contains(t, buf.String(), "update is not valid YAML, skipping")
	})
}

func TestLoad_VerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(ui.New(&buf, true), false).Load("{}", "update")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "loading update...")
	assert.Contains(t, buf.String(), "update loaded from raw")
}
