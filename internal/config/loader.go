package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the config file searched for.
const ConfigFileName = "cmdrun.toml"

// ConfigLoader is responsible for loading and merging configuration.
type ConfigLoader struct {
	homeDir    string
	configPath string // Explicit --config path
}

// NewConfigLoader creates a new ConfigLoader. homeDir is the per-user
// config directory (~/.cmdrun).
func NewConfigLoader(homeDir, configPath string) *ConfigLoader {
	return &ConfigLoader{
		homeDir:    homeDir,
		configPath: configPath,
	}
}

// LoadFileConfig loads and parses config files, merging them in priority
// order: explicit path > ./cmdrun.toml > ~/.cmdrun/cmdrun.toml. Higher
// priority values overwrite lower ones. Returns the merged FileConfig and
// the highest-priority config file path ("" when none was found, which is
// not an error).
func (l *ConfigLoader) LoadFileConfig() (*FileConfig, string, error) {
	// Collect config files in order of increasing priority.
	var configFiles []string

	homePath := filepath.Join(l.homeDir, ConfigFileName)
	if _, err := os.Stat(homePath); err == nil {
		configFiles = append(configFiles, homePath)
	}

	if _, err := os.Stat(ConfigFileName); err == nil {
		if absPath, _ := filepath.Abs(ConfigFileName); absPath != homePath {
			configFiles = append(configFiles, ConfigFileName)
		}
	}

	if l.configPath != "" {
		if _, err := os.Stat(l.configPath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s", l.configPath)
		}
		configFiles = append(configFiles, l.configPath)
	}

	merged := &FileConfig{}
	if len(configFiles) == 0 {
		return merged, "", nil
	}

	for _, path := range configFiles {
		cfg, err := parseFile(path)
		if err != nil {
			return nil, "", err
		}
		merged.merge(cfg)
	}

	return merged, configFiles[len(configFiles)-1], nil
}

func parseFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
