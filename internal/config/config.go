// Reads the optional pretty-date config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/sinclairtarget/pretty-date/internal/format"
)

var ErrConfigNotFound = errors.New("no config file found")

const appName = "pretty-date"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	JustNow time.Duration `yaml:"just_now"`
	Color   ColorMode     `yaml:"color"`

	// Where the config was read from. Empty when using defaults.
	Path string `yaml:"-"`
}

// Default returns the config used when no file is found.
func Default() *Config {
	var c Config
	c.ensureDefaults()
	return &c
}

// Load loads configuration with the following priority:
// 1. User provided fpath (must exist if given)
// 2. $XDG_CONFIG_HOME/pretty-date/config.yaml or $HOME/.config/pretty-date/config.yaml
// 3. /etc/pretty-date/config.yaml
//
// If no file is found, the default config is returned.
func Load(fpath string) (*Config, error) {
	configPath, err := findConfigFile(fpath)
	if errors.Is(err, ErrConfigNotFound) {
		logger().Debug("no config file, using defaults")
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	c, err := parse(configBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	c.Path = configPath
	logger().Debug("loaded config", "path", configPath, "config", c)
	return c, nil
}

func parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	c.ensureDefaults()

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) ensureDefaults() {
	if c.JustNow == 0 {
		c.JustNow = format.DefaultJustNow
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", userPath, err)
		}
		return userPath, nil
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, appName, "config.yaml")
		if isFileExists(p) {
			return p, nil
		}
	}

	path := filepath.Join("/etc", appName, "config.yaml")
	if isFileExists(path) {
		return path, nil
	}

	return "", ErrConfigNotFound
}

func isFileExists(path string) bool {
	i, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !i.IsDir()
}
