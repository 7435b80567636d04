package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{"dsn", "refresh-ms", "rows", "home-view", "sort"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag --%s", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestRootFlagDefaults(t *testing.T) {
	refresh, err := rootCmd.Flags().GetInt("refresh-ms")
	require.NoError(t, err)
	assert.Equal(t, 1000, refresh)

	rows, err := rootCmd.Flags().GetInt("rows")
	require.NoError(t, err)
	assert.Equal(t, 10, rows)

	homeView, err := rootCmd.Flags().GetString("home-view")
	require.NoError(t, err)
	assert.Equal(t, "activity", homeView)

	sort, err := rootCmd.Flags().GetString("sort")
	require.NoError(t, err)
	assert.Equal(t, "longest_running", sort)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["init"])
	assert.True(t, names["version"])
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"adds v prefix", "1.2.3", "v1.2.3"},
		{"keeps existing prefix", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}
