package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luffy84217/my-first-browser-engine/pkg/html"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 16\nformat: html\n"), 0o644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxDepth)
	assert.Equal(t, "html", cfg.Format)
}

func TestLoadConfigFileErrors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max_depth: [oops\n"), 0o644))
	_, err = loadConfigFile(bad)
	require.Error(t, err)
}

func TestMergeSettings(t *testing.T) {
	tests := []struct {
		name         string
		file         settings
		flagFormat   string
		flagMaxDepth int
		expected     settings
		wantErr      bool
	}{
		{
			name:     "Defaults",
			expected: settings{Format: formatJSON},
		},
		{
			name:     "File Values Kept",
			file:     settings{MaxDepth: 8, Format: formatHTML},
			expected: settings{MaxDepth: 8, Format: formatHTML},
		},
		{
			name:         "Flags Win Over File",
			file:         settings{MaxDepth: 8, Format: formatHTML},
			flagFormat:   formatJSON,
			flagMaxDepth: 32,
			expected:     settings{MaxDepth: 32, Format: formatJSON},
		},
		{
			name:       "Unknown Format",
			flagFormat: "xml",
			wantErr:    true,
		},
		{
			name:         "Negative Max Depth",
			flagMaxDepth: -1,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.file.merge(tt.flagFormat, tt.flagMaxDepth)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatTree(t *testing.T) {
	root, err := html.Parse(`<div id="x">hi</div>`)
	require.NoError(t, err)

	out, err := formatTree(root, formatHTML)
	require.NoError(t, err)
	assert.Equal(t, "<div id=\"x\">hi</div>\n", out)

	out, err = formatTree(root, formatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"tag": "div"`)
	assert.Contains(t, out, `"id": "x"`)
	assert.Contains(t, out, `"content": "hi"`)
}
