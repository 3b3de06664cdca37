// Config loading for the eventbook CLI. Precedence per setting:
// flag > EVENTBOOK_* environment variable > config.yaml > default.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/eventbook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	defaultConfigDir = ".eventbook"
	defaultDataDir   = ".eventbook-db"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyListenAddr = "listen_addr"
	cfgKeyStrict     = "strict_validation"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Eventbook configuration

# Storage backend: "jsonfile" (one JSON array per entity) or "sqlite".
backend: jsonfile

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# HTTP listen address for "eventbook serve".
listen_addr: ":8080"

# Reject events whose end date precedes their start date, nonpositive
# capacities, and dangling event foreign keys.
strict_validation: false
`

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("EVENTBOOK_CONFIG_DIR"); v != "" {
		return v
	}
	return defaultConfigDir
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper and applies flag and environment overrides. A missing config.yaml
// is not an error.
func loadConfig() (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSONFile)
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetDefault(cfgKeyListenAddr, ":8080")
	v.SetDefault(cfgKeyStrict, false)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(resolveConfigDir())
	v.SetEnvPrefix("EVENTBOOK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config.yaml is not an error; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parse config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml when absent.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
