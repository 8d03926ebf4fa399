package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/apex/log"
)

var (
	cfgFile = "chessrules/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type Config struct {
	// Color enables ANSI colored output.
	Color bool `json:"color"`
	// Unicode draws pieces with chess glyphs instead of FEN letters.
	Unicode bool `json:"unicode"`
	// SaveFile overrides the default save location. Empty uses the XDG data directory.
	SaveFile string  `json:"save_file"`
	LogLevel string  `json:"log_level"`
	Players  Players `json:"players"`
}

// InitConfig loads the first config file found in the XDG config directories on top of
// DefaultConfig.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads a config file from an explicit path on top of DefaultConfig.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.Players.White == "" || c.Players.Black == "" {
		return &InvalidConfig{"player names must not be empty"}
	}
	if c.Players.White == c.Players.Black {
		return &InvalidConfig{"player names must differ"}
	}
	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Save writes c to the XDG config directory and returns the path written.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, c.WriteFile(absPath)
}

// WriteFile writes c to path, creating its parent directories. Invalid configs are refused.
func (c *Config) WriteFile(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return saveCfgFile(path, c)
}

func saveCfgFile(filePath string, a interface{}) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, 0o664)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
