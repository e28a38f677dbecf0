// Package config provides configuration for Impasse.
//
// Configuration is stored in ~/.impasse/config.toml, in TOML format.
// There is no mid-game save/resume: a run's only persistent artifact is
// the end-of-game log written by internal/gamelog.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that drive a run: the per-move search time
// budget, which side the computer plays, the game-log toggle, and display
// preferences.
type Config struct {
	// ComputerStarts determines whether the computer plays MAX (moves
	// first) or MIN.
	ComputerStarts bool
	// MoveTime bounds how long the computer searches for each move.
	MoveTime time.Duration
	// SaveGameLog controls whether Game.txt is written when the game ends.
	SaveGameLog bool
	// UseColors controls whether the board is rendered with terminal
	// colors.
	UseColors bool
	// ShowCoords controls whether rank/file labels are printed.
	ShowCoords bool
}

// DefaultConfig returns the reference defaults: computer starts, 200ms
// per move, game log on, colors on, coordinates on.
func DefaultConfig() Config {
	return Config{
		ComputerStarts: true,
		MoveTime:       200 * time.Millisecond,
		SaveGameLog:    true,
		UseColors:      true,
		ShowCoords:     true,
	}
}

// ConfigFile is the TOML-serializable form of Config.
type ConfigFile struct {
	Game    GameConfig    `toml:"game"`
	Display DisplayConfig `toml:"display"`
}

// GameConfig holds game-related settings for the TOML file.
type GameConfig struct {
	ComputerStarts bool `toml:"computer_starts"`
	MoveTimeMillis int  `toml:"move_time_ms"`
	SaveGameLog    bool `toml:"save_game_log"`
}

// DisplayConfig holds display-related settings for the TOML file.
type DisplayConfig struct {
	UseColors  bool `toml:"use_colors"`
	ShowCoords bool `toml:"show_coordinates"`
}

func defaultConfigFile() ConfigFile {
	d := DefaultConfig()
	return ConfigFile{
		Game: GameConfig{
			ComputerStarts: d.ComputerStarts,
			MoveTimeMillis: int(d.MoveTime / time.Millisecond),
			SaveGameLog:    d.SaveGameLog,
		},
		Display: DisplayConfig{
			UseColors:  d.UseColors,
			ShowCoords: d.ShowCoords,
		},
	}
}

func configFileToConfig(cf ConfigFile) Config {
	moveTime := time.Duration(cf.Game.MoveTimeMillis) * time.Millisecond
	if moveTime <= 0 {
		moveTime = DefaultConfig().MoveTime
	}
	return Config{
		ComputerStarts: cf.Game.ComputerStarts,
		MoveTime:       moveTime,
		SaveGameLog:    cf.Game.SaveGameLog,
		UseColors:      cf.Display.UseColors,
		ShowCoords:     cf.Display.ShowCoords,
	}
}

func configToConfigFile(c Config) ConfigFile {
	return ConfigFile{
		Game: GameConfig{
			ComputerStarts: c.ComputerStarts,
			MoveTimeMillis: int(c.MoveTime / time.Millisecond),
			SaveGameLog:    c.SaveGameLog,
		},
		Display: DisplayConfig{
			UseColors:  c.UseColors,
			ShowCoords: c.ShowCoords,
		},
	}
}

// LoadConfig reads ~/.impasse/config.toml. If the file is missing or
// cannot be parsed, it returns DefaultConfig — this function never
// returns an error.
func LoadConfig() Config {
	configPath, err := getConfigFilePath()
	if err != nil {
		return DefaultConfig()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cf ConfigFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return DefaultConfig()
	}

	return configFileToConfig(cf)
}

// SaveConfig writes config to ~/.impasse/config.toml, creating the
// directory if needed.
func SaveConfig(config Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(configToConfigFile(config)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}
