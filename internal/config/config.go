// Package config provides YAML-based game configuration loading and
// difficulty presets for the meteor game.
package config

import "time"

// MeteorsConfig contains all configuration for the meteor game.
// It is loaded once at startup and treated as read-only afterwards.
type MeteorsConfig struct {
	Screen  ScreenConfig `yaml:"screen"`
	Ship    ShipConfig   `yaml:"ship"`
	Meteors MeteorConfig `yaml:"meteors"`
	Rules   RulesConfig  `yaml:"rules"`
	Timing  TimingConfig `yaml:"timing"`
	Colors  ColorConfig  `yaml:"colors"`
	Assets  AssetConfig  `yaml:"assets"`
}

// ScreenConfig defines the logical playfield. Positions and sizes in every
// other section are in these units.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"` // Window title
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Displacement per key press
	BottomOffset int `yaml:"bottom_offset"` // Spawn y is Height - BottomOffset before clamping
}

// MeteorConfig defines falling meteors.
type MeteorConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MaxSpeed      int `yaml:"max_speed"`      // Fall speed is drawn from [0, MaxSpeed]
	InitialCount  int `yaml:"initial_count"`  // Meteors present at cycle 0
	InitialY      int `yaml:"initial_y"`      // Spawn height
	ReentryY      int `yaml:"reentry_y"`      // Height after wrapping past the bottom
	SpawnInterval int `yaml:"spawn_interval"` // One new meteor every N cycles
	MaxCount      int `yaml:"max_count"`      // 0 = unbounded; otherwise the oldest meteor is recycled
}

// RulesConfig defines win and scoring rules.
type RulesConfig struct {
	MaxCycles     int `yaml:"max_cycles"`     // Cycle at which the player wins; 0 = endless
	ScoreInterval int `yaml:"score_interval"` // One point every N cycles
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS      int           `yaml:"fps"`
	EndDelay time.Duration `yaml:"end_delay"` // Hold on the final frame before exiting
}

// ColorConfig holds color names resolved with core.ParseColor.
type ColorConfig struct {
	Background        string `yaml:"background"`
	Text              string `yaml:"text"`
	MessageBackground string `yaml:"message_background"`
}

// AssetConfig names the sprite images used by the window front end.
type AssetConfig struct {
	Dir         string `yaml:"dir"` // Empty = embedded images
	ShipImage   string `yaml:"ship_image"`
	MeteorImage string `yaml:"meteor_image"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
