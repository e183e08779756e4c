// Package config loads optional landsort defaults from
// ~/.config/landsort/config.toml. The organizer works from flags alone;
// a config file only changes the defaults those flags start from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Nomadcxx/landsort/internal/logging"
	"github.com/Nomadcxx/landsort/internal/paths"
)

type Config struct {
	Options OptionsConfig  `mapstructure:"options"`
	Watch   WatchConfig    `mapstructure:"watch"`
	History HistoryConfig  `mapstructure:"history"`
	Logging logging.Config `mapstructure:"logging"`
}

// OptionsConfig contains default organize options
type OptionsConfig struct {
	Mode      string `mapstructure:"mode"` // copy or move
	Recursive bool   `mapstructure:"recursive"`
	DryRun    bool   `mapstructure:"dry_run"`
}

// WatchConfig contains watch-mode settings
type WatchConfig struct {
	// SettleSeconds is how long a new file must stay unchanged before
	// it is organized. Guards against sorting half-written downloads.
	SettleSeconds int `mapstructure:"settle_seconds"`
}

// HistoryConfig controls the transfer history database
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Options: OptionsConfig{
			Mode:      "copy",
			Recursive: false,
			DryRun:    false,
		},
		Watch: WatchConfig{
			SettleSeconds: 5,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from the default location or returns defaults
// if no config file exists.
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadPath(configPath)
}

// LoadPath loads configuration from a specific file, falling back to
// defaults for anything unset or when the file does not exist.
func LoadPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the default location
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// Exists reports whether a config file is present at the default location
func Exists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# landsort configuration
# Generated by: landsort config init

# ============================================================================
# DEFAULT ORGANIZE OPTIONS
# Starting values for the organize command; flags override these.
# ============================================================================
[options]
# copy or move
mode = "%s"

# Scan subdirectories of source
recursive = %v

# Preview mode - compute the plan without touching the filesystem
dry_run = %v

# ============================================================================
# WATCH MODE
# ============================================================================
[watch]
# Seconds a new file must stay unchanged before it is organized
settle_seconds = %d

# ============================================================================
# TRANSFER HISTORY
# Records completed copies/moves; inspect with "landsort history"
# ============================================================================
[history]
enabled = %v

# ============================================================================
# LOGGING
# ============================================================================
[logging]
level = "%s"
file = "%s"
max_size_mb = %d
max_backups = %d
`,
		c.Options.Mode,
		c.Options.Recursive,
		c.Options.DryRun,
		c.Watch.SettleSeconds,
		c.History.Enabled,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}
