package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/runner"
)

var testField = config.FieldConfig{Width: 800, Height: 200}

func TestViewportCellRect(t *testing.T) {
	// 80 columns and 20 field rows: 10 units per cell in both directions.
	v := newViewport(core.NewScreen(80, 21), testField)

	tests := []struct {
		name     string
		box      core.Box
		expected core.Rect
	}{
		{"player on ground", core.NewBox(40, 150, 48, 50), core.NewRect(4, 15, 5, 5)},
		{"obstacle", core.NewBox(400, 160, 30, 40), core.NewRect(40, 16, 3, 4)},
		{"thin box gets a cell", core.NewBox(100, 100, 1, 1), core.NewRect(10, 10, 1, 1)},
		{"partly off screen", core.NewBox(-20, 160, 30, 40), core.NewRect(-2, 16, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.cellRect(tt.box); got != tt.expected {
				t.Errorf("cellRect(%+v) = %+v, expected %+v", tt.box, got, tt.expected)
			}
		})
	}
}

func TestDrawFieldRunning(t *testing.T) {
	screen := core.NewScreen(80, 21)
	snap := runner.Snapshot{
		Phase:     runner.PhaseRunning,
		Player:    core.NewBox(40, 150, 48, 50),
		Obstacles: []core.Box{core.NewBox(400, 160, 30, 40)},
		CoinBoxes: []core.Box{core.NewBox(600, 100, 30, 30)},
	}

	DrawField(screen, snap, testField)

	checks := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"player", 4, 19, glyphPlayer, core.ColorCyan},
		{"obstacle", 41, 18, glyphObstacle, core.ColorRed},
		{"coin", 60, 10, glyphCoin, core.ColorBrightYellow},
		{"ground", 0, 20, glyphGround, core.ColorGray},
		{"sky", 30, 2, ' ', core.ColorDefault},
	}

	for _, c := range checks {
		cell := screen.GetCell(c.x, c.y)
		if cell.Rune != c.rune || cell.Color != c.color {
			t.Errorf("%s at (%d,%d) = %q/%d, expected %q/%d", c.name, c.x, c.y, cell.Rune, cell.Color, c.rune, c.color)
		}
	}

	if strings.Contains(screen.String(), "PAUSED") {
		t.Error("panel drawn while running")
	}
}

func TestDrawFieldPanels(t *testing.T) {
	tests := []struct {
		name     string
		snap     runner.Snapshot
		contains []string
	}{
		{
			name:     "idle",
			snap:     runner.Snapshot{Phase: runner.PhaseIdle},
			contains: []string{"C O I N", "Press Space or Enter"},
		},
		{
			name:     "paused",
			snap:     runner.Snapshot{Phase: runner.PhasePaused},
			contains: []string{"PAUSED"},
		},
		{
			name:     "game over",
			snap:     runner.Snapshot{Phase: runner.PhaseGameOver, Score: 42, Coins: 3, BestScore: 42, NewBest: true},
			contains: []string{"GAME OVER", "Score 42   Coins 3", "Best 42  NEW BEST!", "Space or Enter to play again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(80, 21)
			DrawField(screen, tt.snap, testField)
			out := screen.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("screen missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGameOverPanelWithoutNewBest(t *testing.T) {
	lines := panelLines(runner.Snapshot{Phase: runner.PhaseGameOver, Score: 10, BestScore: 30})

	for _, l := range lines {
		if strings.Contains(l, "NEW BEST") {
			t.Errorf("panel claims a new best: %q", l)
		}
	}
}

func TestHUDLine(t *testing.T) {
	snap := runner.Snapshot{
		Score:      12,
		Coins:      3,
		BestScore:  40,
		Multiplier: 1.2,
		Elapsed:    75 * time.Second,
	}

	expected := "SCORE 12   COINS 3   BEST 40   SPEED x1.2   1:15"
	if got := hudLine(snap); got != expected {
		t.Errorf("hudLine() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "abc", core.ColorRed)
	screen.DrawText(0, 1, "xyz")

	out := RenderScreen(screen)

	for _, want := range []string{"abc", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
