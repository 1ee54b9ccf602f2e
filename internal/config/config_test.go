package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultRunnerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n yaml=%+v\n code=%+v", fromYAML, DefaultRunnerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.TickRate = 0
	cfg.Difficulty.MaxSpeed = 0.5
	cfg.Coins.IntervalMs = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"tick_rate", "max_speed", "coins.interval_ms"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error should mention %q, got %q", want, msg)
		}
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("tick_rate: 30\nscoring:\n  coin_reward: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Scoring.CoinReward != 5 {
		t.Errorf("CoinReward = %d, expected 5", cfg.Scoring.CoinReward)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.BaseIntervalMs != 2000 {
		t.Errorf("BaseIntervalMs = %d, expected default 2000", cfg.Obstacles.BaseIntervalMs)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadRunnerInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  max_speed: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Error("expected validation error for max_speed below 1.0")
	}
}

func TestLoadRunnerReportsSkippedUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".coinrun", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(bad, []byte("difficulty:\n  max_speed: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var skipped []string
	cfg, err := LoadRunner("", WithSkipHandler(func(path string, err error) {
		if err == nil {
			t.Errorf("skip handler called without an error for %s", path)
		}
		skipped = append(skipped, path)
	}))
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}

	if len(skipped) != 1 || skipped[0] != bad {
		t.Errorf("skipped = %v, expected [%s]", skipped, bad)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("LoadRunner() = %+v, expected defaults", cfg)
	}
}

func TestTryLoad(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(valid, []byte("scoring:\n  coin_reward: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("scoring:\n  coin_reward: lots\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		ok      bool
		wantErr bool
	}{
		{"missing", filepath.Join(dir, "missing.yaml"), false, false},
		{"valid", valid, true, false},
		{"unparsable", invalid, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := tryLoad(tt.path)
			if ok != tt.ok || (err != nil) != tt.wantErr {
				t.Errorf("tryLoad(%s) = %v, %v; expected ok=%v, error=%v", tt.name, ok, err, tt.ok, tt.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(RunnerConfig) bool
	}{
		{DifficultyNormal, func(c RunnerConfig) bool { return c == DefaultRunnerConfig() }},
		{DifficultyEasy, func(c RunnerConfig) bool { return c.Difficulty.MaxSpeed < 4.0 && c.Obstacles.BaseIntervalMs > 2000 }},
		{DifficultyHard, func(c RunnerConfig) bool { return c.Difficulty.SpeedStep > 0.1 && c.Obstacles.MinIntervalMs < 1000 }},
		{DifficultyFixed, func(c RunnerConfig) bool { return c.Difficulty.SpeedStep == 0 && c.Obstacles.IntervalStepMs == 0 }},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if !tc.check(cfg) {
				t.Errorf("preset %q not applied: %+v", tc.preset, cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Player.JumpDuration() != 600*time.Millisecond {
		t.Errorf("JumpDuration() = %v", cfg.Player.JumpDuration())
	}
	if cfg.Obstacles.BaseDuration() != 2*time.Second {
		t.Errorf("obstacle BaseDuration() = %v", cfg.Obstacles.BaseDuration())
	}
	if cfg.Coins.Interval() != 3*time.Second {
		t.Errorf("coin Interval() = %v", cfg.Coins.Interval())
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("COINRUN_DB", "/tmp/runs.db")
	t.Setenv("COINRUN_FPS", "30")
	t.Setenv("COINRUN_DIFFICULTY", "hard")
	t.Setenv("COINRUN_LOG", "")
	os.Unsetenv("COINRUN_LOG")

	s, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if s.DBPath != "/tmp/runs.db" || s.FPS != 30 || s.Difficulty != "hard" {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.LogFile != "" {
		t.Errorf("LogFile should default to empty, got %q", s.LogFile)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	for _, key := range []string{"COINRUN_DB", "COINRUN_FPS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if s.DBPath != "~/.coinrun/scores.db" || s.FPS != 60 {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestParseEnvRejectsBadNumber(t *testing.T) {
	t.Setenv("COINRUN_FPS", "fast")

	if _, err := ParseEnv(); err == nil {
		t.Error("expected error for non-numeric COINRUN_FPS")
	}
}
