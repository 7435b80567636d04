package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/pgmon/internal/config"
)

func TestValidateRefreshInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "1000", false},
		{"lower bound", "200", false},
		{"upper bound", "60000", false},
		{"below bound", "199", true},
		{"above bound", "60001", true},
		{"not a number", "fast", true},
		{"whitespace tolerated", " 500 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRefreshInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	cfg := config.Options{
		DSN:       "postgres://localhost/test",
		RefreshMs: 500,
		Rows:      25,
		HomeView:  "statements",
		Sort:      "calls",
	}
	require.NoError(t, writeConfig(path, &cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# pgmon configuration")

	var loaded config.Options
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, cfg.DSN, loaded.DSN)
	assert.Equal(t, cfg.RefreshMs, loaded.RefreshMs)
	assert.Equal(t, cfg.Rows, loaded.Rows)
	assert.Equal(t, cfg.HomeView, loaded.HomeView)
	assert.Equal(t, cfg.Sort, loaded.Sort)
}

func TestWriteConfigBadPath(t *testing.T) {
	err := writeConfig(filepath.Join(t.TempDir(), "missing", "sub", "pgmon.yaml"), &config.Options{})
	assert.Error(t, err)
}
