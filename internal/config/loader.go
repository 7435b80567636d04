package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileyhilliard/pgmon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".pgmon.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/pgmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load builds the dashboard Options from, in order of precedence:
// command-line flags, PGMON_* environment variables, a config file
// (explicit path, ./.pgmon.yaml, or ~/.config/pgmon/config.yaml),
// and built-in defaults. The returned Options are validated.
func Load(configPath string, flags *pflag.FlagSet) (*Options, error) {
	v := viper.New()

	v.SetDefault("refresh_ms", int(DefaultRefresh/time.Millisecond))
	v.SetDefault("rows", DefaultRows)
	v.SetDefault("home_view", DefaultHomeView)
	v.SetDefault("sort", DefaultSort)

	v.SetEnvPrefix("PGMON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, err := findConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file exists and is valid YAML")
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	opts := &Options{
		DSN:       v.GetString("dsn"),
		RefreshMs: v.GetInt("refresh_ms"),
		Rows:      v.GetInt("rows"),
		HomeView:  v.GetString("home_view"),
		Sort:      v.GetString("sort"),
	}
	opts.RefreshInterval = time.Duration(opts.RefreshMs) * time.Millisecond

	if err := Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// bindFlags maps the CLI flag spelling onto the config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flagName, key := range map[string]string{
		"dsn":        "dsn",
		"refresh-ms": "refresh_ms",
		"rows":       "rows",
		"home-view":  "home_view",
		"sort":       "sort",
	} {
		f := flags.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to bind flag --"+flagName, "")
		}
	}
	return nil
}

// findConfigFile locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .pgmon.yaml in the current directory
// 3. ~/.config/pgmon/config.yaml
//
// Returns empty string if no file is found; a missing config file is not
// an error since flags and env can fully configure the dashboard.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}
