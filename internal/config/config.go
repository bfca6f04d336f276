package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Room    RoomConfig
	Library LibraryConfig
	UI      UIConfig
}

// RoomConfig names the room owner and its shelves. Shelf order matters: it
// fixes the round-robin placement targets.
type RoomConfig struct {
	Owner   string
	Shelves []string
}

// LibraryConfig points at an optional CSV pile to ingest at startup. Empty
// path means the built-in sample pile.
type LibraryConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PreviewRows int `mapstructure:"preview_rows"`
}

// Load reads configuration from file and env. Env var overrides use prefix BOOKROOM_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("room.owner", "Bob")
	v.SetDefault("room.shelves", []string{"Left", "Right", "Top"})
	v.SetDefault("library.path", "")
	v.SetDefault("ui.preview_rows", 20)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BOOKROOM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bookroom"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BOOKROOM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI settings path for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("BOOKROOM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "bookroom", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("room.owner", cfg.Room.Owner)
	v.Set("room.shelves", cfg.Room.Shelves)
	v.Set("library.path", cfg.Library.Path)
	v.Set("ui.preview_rows", cfg.UI.PreviewRows)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
