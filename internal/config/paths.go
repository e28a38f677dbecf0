package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the Impasse configuration directory,
// ~/.impasse/.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".impasse"), nil
}

// getConfigFilePath returns the full path to the configuration file.
func getConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetConfigPath returns the absolute path to the configuration file,
// ~/.impasse/config.toml.
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}
