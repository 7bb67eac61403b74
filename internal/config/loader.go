package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// LoadMeteors loads the meteor game configuration.
// Search order: customPath -> ~/.meteors/configs/meteors.yaml -> ./configs/meteors.yaml -> embedded default
func LoadMeteors(customPath string) (MeteorsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MeteorsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("meteors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "meteors.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMeteorsYAML)
	if err != nil {
		return DefaultMeteorsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults, so partial files only override
// the keys they set, and validates the result.
func parse(data []byte) (MeteorsConfig, error) {
	cfg := DefaultMeteorsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meteors", "configs", filename)
}

// Validate checks that every size, rate and interval is usable.
func (c MeteorsConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("ship.width", c.Ship.Width)
	positive("ship.height", c.Ship.Height)
	positive("ship.speed", c.Ship.Speed)
	positive("meteors.width", c.Meteors.Width)
	positive("meteors.height", c.Meteors.Height)
	positive("meteors.spawn_interval", c.Meteors.SpawnInterval)
	positive("rules.score_interval", c.Rules.ScoreInterval)
	positive("timing.fps", c.Timing.FPS)
	nonNegative("meteors.max_speed", c.Meteors.MaxSpeed)
	nonNegative("meteors.initial_count", c.Meteors.InitialCount)
	nonNegative("meteors.max_count", c.Meteors.MaxCount)
	nonNegative("rules.max_cycles", c.Rules.MaxCycles)

	if c.Timing.EndDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.end_delay must not be negative, got %s", c.Timing.EndDelay))
	}
	if c.Ship.Width > c.Screen.Width || c.Ship.Height > c.Screen.Height {
		errs = append(errs, errors.New("ship does not fit on the screen"))
	}

	for name, value := range map[string]string{
		"colors.background":         c.Colors.Background,
		"colors.text":               c.Colors.Text,
		"colors.message_background": c.Colors.MessageBackground,
	} {
		if _, err := core.ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// ApplyMeteorsPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the reference constants.
func ApplyMeteorsPreset(cfg *MeteorsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Meteors.MaxSpeed = 3
		cfg.Meteors.SpawnInterval = 60
	case DifficultyHard:
		cfg.Meteors.MaxSpeed = 8
		cfg.Meteors.SpawnInterval = 25
		cfg.Meteors.InitialCount = 12
	}
}
