package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	if m.items[m.cursor].Preset != config.DifficultyNormal {
		t.Fatalf("cursor on %q, expected normal", m.items[m.cursor].Preset)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatal("enter should end the menu program")
	}

	result := menuResult(next.(MenuModel))
	if result.Quit || result.WantsScoreboard || result.Preset != config.DifficultyHard {
		t.Errorf("menuResult() = %+v, expected hard", result)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r := menuResult(next.(MenuModel)); !r.WantsScoreboard {
		t.Errorf("tab: menuResult() = %+v, expected scoreboard", r)
	}

	next, _ = m.Update(runeKey('q'))
	if r := menuResult(next.(MenuModel)); !r.Quit {
		t.Errorf("q: menuResult() = %+v, expected quit", r)
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.SetBestScore("easy", 77); err != nil {
		t.Fatalf("SetBestScore() error = %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "best 77") {
		t.Error("View() missing the easy best score")
	}
}
