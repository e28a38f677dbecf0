package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithMissingFile(t *testing.T) {
	configPath, err := getConfigFilePath()
	require.NoError(t, err)

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		require.NoError(t, os.Rename(configPath, backupPath))
		defer os.Rename(backupPath, configPath)
	}

	config := LoadConfig()
	assert.Equal(t, DefaultConfig(), config)
}

func TestSaveAndLoadConfig(t *testing.T) {
	custom := Config{
		ComputerStarts: false,
		MoveTime:       500 * time.Millisecond,
		SaveGameLog:    false,
		UseColors:      false,
		ShowCoords:     false,
	}

	require.NoError(t, SaveConfig(custom))

	loaded := LoadConfig()
	assert.Equal(t, custom, loaded)
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	require.NoError(t, err)

	require.NoError(t, SaveConfig(DefaultConfig()))

	_, err = os.Stat(configDir)
	assert.NoError(t, err)
}

func TestConfigFileToConfig(t *testing.T) {
	cf := ConfigFile{
		Game: GameConfig{
			ComputerStarts: false,
			MoveTimeMillis: 750,
			SaveGameLog:    false,
		},
		Display: DisplayConfig{
			UseColors:  false,
			ShowCoords: true,
		},
	}

	config := configFileToConfig(cf)

	assert.Equal(t, cf.Game.ComputerStarts, config.ComputerStarts)
	assert.Equal(t, 750*time.Millisecond, config.MoveTime)
	assert.Equal(t, cf.Game.SaveGameLog, config.SaveGameLog)
	assert.Equal(t, cf.Display.UseColors, config.UseColors)
	assert.Equal(t, cf.Display.ShowCoords, config.ShowCoords)
}

func TestConfigFileToConfigZeroMoveTimeFallsBackToDefault(t *testing.T) {
	cf := ConfigFile{Game: GameConfig{MoveTimeMillis: 0}}
	config := configFileToConfig(cf)
	assert.Equal(t, DefaultConfig().MoveTime, config.MoveTime)
}

func TestConfigToConfigFile(t *testing.T) {
	config := Config{
		ComputerStarts: false,
		MoveTime:       300 * time.Millisecond,
		SaveGameLog:    true,
		UseColors:      false,
		ShowCoords:     true,
	}

	cf := configToConfigFile(config)

	assert.Equal(t, config.ComputerStarts, cf.Game.ComputerStarts)
	assert.Equal(t, 300, cf.Game.MoveTimeMillis)
	assert.Equal(t, config.SaveGameLog, cf.Game.SaveGameLog)
	assert.Equal(t, config.UseColors, cf.Display.UseColors)
	assert.Equal(t, config.ShowCoords, cf.Display.ShowCoords)
}

func TestDefaultConfigFile(t *testing.T) {
	cf := defaultConfigFile()
	d := DefaultConfig()

	assert.Equal(t, d.ComputerStarts, cf.Game.ComputerStarts)
	assert.Equal(t, int(d.MoveTime/time.Millisecond), cf.Game.MoveTimeMillis)
	assert.Equal(t, d.SaveGameLog, cf.Game.SaveGameLog)
	assert.Equal(t, d.UseColors, cf.Display.UseColors)
	assert.Equal(t, d.ShowCoords, cf.Display.ShowCoords)
}
