package runner

import (
	"testing"

	"github.com/vovakirdan/coin-runner/internal/config"
)

func TestAutopilotStartsRun(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSession(cfg, NewMemoryStore(0))
	pilot := NewAutopilot(cfg)

	s.Apply(pilot.Next(s))

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
}

func TestAutopilotSurvives(t *testing.T) {
	for _, preset := range []config.DifficultyPreset{config.DifficultyNormal, config.DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			config.ApplyPreset(&cfg, preset)
			s := NewSession(cfg, NewMemoryStore(0))
			pilot := NewAutopilot(cfg)

			// 30 seconds of game time.
			for range 30 * cfg.TickRate {
				s.Apply(pilot.Next(s))
				s.Tick()
			}

			if s.Phase() != PhaseRunning {
				sum, _ := s.Summary()
				t.Fatalf("autopilot crashed: %+v", sum)
			}
			if s.Score() < 10 {
				t.Errorf("Score() = %d after 30s, expected at least 10", s.Score())
			}
		})
	}
}

func TestAutopilotIdleAfterGameOver(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSession(cfg, NewMemoryStore(0))
	s.RequestStart()
	placeObstacleOnPlayer(s)
	s.Update(s.Now())

	frame := NewAutopilot(cfg).Next(s)
	if !frame.Empty() {
		t.Errorf("Next() after game over = %v, expected no intents", frame.Actions())
	}
}
