package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the default meteor game configuration.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
			Title:  "Space Invader",
		},
		Ship: ShipConfig{
			Width:        100,
			Height:       100,
			Speed:        10,
			BottomOffset: 40,
		},
		Meteors: MeteorConfig{
			Width:         30,
			Height:        30,
			MaxSpeed:      5,
			InitialCount:  8,
			InitialY:      10,
			ReentryY:      5,
			SpawnInterval: 40,
			MaxCount:      0,
		},
		Rules: RulesConfig{
			MaxCycles:     1000,
			ScoreInterval: 10,
		},
		Timing: TimingConfig{
			FPS:      30,
			EndDelay: time.Second,
		},
		Colors: ColorConfig{
			Background:        "black",
			Text:              "blue",
			MessageBackground: "white",
		},
		Assets: AssetConfig{
			ShipImage:   "starship.png",
			MeteorImage: "meteor.png",
		},
	}
}

// EndlessVariant returns a copy of cfg without a cycle budget. The meteor
// collection is capped so memory stays bounded for arbitrarily long runs.
func EndlessVariant(cfg MeteorsConfig) MeteorsConfig {
	cfg.Rules.MaxCycles = 0
	if cfg.Meteors.MaxCount == 0 {
		cfg.Meteors.MaxCount = 64
	}
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMeteorsYAML
}
