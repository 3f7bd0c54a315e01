package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultStoreRoot matches the library default store directory
const DefaultStoreRoot = "recordings"

type Config struct {
	StoreRoot     string
	LogLevel      string
	Development   bool
	EnableFFprobe bool
	FFprobePath   string
}

type fileConfig struct {
	StoreRoot     string `toml:"store_root"`
	LogLevel      string `toml:"log_level"`
	Development   bool   `toml:"development"`
	EnableFFprobe bool   `toml:"enable_ffprobe"`
	FFprobePath   string `toml:"ffprobe_path"`
}

// Load reads path, or the default config file when path is empty, then
// applies AUDIOCORE_* environment overrides. A missing default file is not an
// error; a missing explicit path is. The store root is not created here.
func Load(path string) (*Config, error) {
	cfg := &Config{
		StoreRoot: DefaultStoreRoot,
		LogLevel:  "info",
	}

	if path == "" {
		path = configFilePath()
	}
	if path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, err
		}
		if fc.StoreRoot != "" {
			cfg.StoreRoot = expandTilde(fc.StoreRoot)
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
		cfg.Development = fc.Development
		cfg.EnableFFprobe = fc.EnableFFprobe
		cfg.FFprobePath = fc.FFprobePath
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AUDIOCORE_STORE_ROOT"); v != "" {
		cfg.StoreRoot = expandTilde(v)
	}
	if v := os.Getenv("AUDIOCORE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("AUDIOCORE_FFPROBE_PATH"); v != "" {
		cfg.FFprobePath = v
		cfg.EnableFFprobe = true
	}
	if v := os.Getenv("AUDIOCORE_ENABLE_FFPROBE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableFFprobe = b
		}
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "audiocore")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "audiocore")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
