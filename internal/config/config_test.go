package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultMeteorsConfig() {
		t.Errorf("embedded YAML and DefaultMeteorsConfig() differ:\n%+v\n%+v", cfg, DefaultMeteorsConfig())
	}
}

func TestReferenceConstants(t *testing.T) {
	cfg := DefaultMeteorsConfig()

	checks := []struct {
		name      string
		got, want int
	}{
		{"screen width", cfg.Screen.Width, 1200},
		{"screen height", cfg.Screen.Height, 800},
		{"ship size", cfg.Ship.Width, 100},
		{"ship speed", cfg.Ship.Speed, 10},
		{"meteor size", cfg.Meteors.Width, 30},
		{"meteor max speed", cfg.Meteors.MaxSpeed, 5},
		{"initial meteors", cfg.Meteors.InitialCount, 8},
		{"initial y", cfg.Meteors.InitialY, 10},
		{"reentry y", cfg.Meteors.ReentryY, 5},
		{"spawn interval", cfg.Meteors.SpawnInterval, 40},
		{"max cycles", cfg.Rules.MaxCycles, 1000},
		{"score interval", cfg.Rules.ScoreInterval, 10},
		{"fps", cfg.Timing.FPS, 30},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, expected %d", c.name, c.got, c.want)
		}
	}
	if cfg.Timing.EndDelay != time.Second {
		t.Errorf("end delay = %s, expected 1s", cfg.Timing.EndDelay)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meteors.yaml")
	data := []byte("rules:\n  max_cycles: 200\ntiming:\n  end_delay: 250ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMeteors(path)
	if err != nil {
		t.Fatalf("LoadMeteors() failed: %v", err)
	}
	if cfg.Rules.MaxCycles != 200 {
		t.Errorf("max_cycles = %d, expected 200", cfg.Rules.MaxCycles)
	}
	if cfg.Timing.EndDelay != 250*time.Millisecond {
		t.Errorf("end_delay = %s, expected 250ms", cfg.Timing.EndDelay)
	}
	// Keys missing from the file keep their defaults
	if cfg.Meteors.SpawnInterval != 40 {
		t.Errorf("spawn_interval = %d, expected default 40", cfg.Meteors.SpawnInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMeteors(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMeteors(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("meteors:\n  spawn_interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadMeteors(invalid)
	if err == nil || !strings.Contains(err.Error(), "spawn_interval") {
		t.Errorf("expected spawn_interval validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MeteorsConfig)
		wantErr string
	}{
		{"defaults ok", func(*MeteorsConfig) {}, ""},
		{"zero fps", func(c *MeteorsConfig) { c.Timing.FPS = 0 }, "timing.fps"},
		{"negative speed", func(c *MeteorsConfig) { c.Meteors.MaxSpeed = -1 }, "meteors.max_speed"},
		{"ship too big", func(c *MeteorsConfig) { c.Ship.Width = 5000 }, "ship does not fit"},
		{"bad color", func(c *MeteorsConfig) { c.Colors.Text = "plaid" }, "colors.text"},
		{"negative delay", func(c *MeteorsConfig) { c.Timing.EndDelay = -time.Second }, "end_delay"},
		{"endless allowed", func(c *MeteorsConfig) { c.Rules.MaxCycles = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMeteorsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	normal := DefaultMeteorsConfig()
	ApplyMeteorsPreset(&normal, DifficultyNormal)
	if normal != DefaultMeteorsConfig() {
		t.Error("normal preset should keep the reference constants")
	}

	fixed := DefaultMeteorsConfig()
	ApplyMeteorsPreset(&fixed, DifficultyFixed)
	if fixed != DefaultMeteorsConfig() {
		t.Error("fixed preset should keep the reference constants")
	}

	easy := DefaultMeteorsConfig()
	ApplyMeteorsPreset(&easy, DifficultyEasy)
	if easy.Meteors.MaxSpeed >= normal.Meteors.MaxSpeed || easy.Meteors.SpawnInterval <= normal.Meteors.SpawnInterval {
		t.Errorf("easy preset should be slower and sparser, got %+v", easy.Meteors)
	}

	hard := DefaultMeteorsConfig()
	ApplyMeteorsPreset(&hard, DifficultyHard)
	if hard.Meteors.MaxSpeed <= normal.Meteors.MaxSpeed || hard.Meteors.SpawnInterval >= normal.Meteors.SpawnInterval {
		t.Errorf("hard preset should be faster and denser, got %+v", hard.Meteors)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestEndlessVariant(t *testing.T) {
	cfg := EndlessVariant(DefaultMeteorsConfig())
	if cfg.Rules.MaxCycles != 0 {
		t.Errorf("endless max_cycles = %d, expected 0", cfg.Rules.MaxCycles)
	}
	if cfg.Meteors.MaxCount != 64 {
		t.Errorf("endless max_count = %d, expected 64", cfg.Meteors.MaxCount)
	}

	custom := DefaultMeteorsConfig()
	custom.Meteors.MaxCount = 10
	if EndlessVariant(custom).Meteors.MaxCount != 10 {
		t.Error("an explicit cap should be kept")
	}
}
