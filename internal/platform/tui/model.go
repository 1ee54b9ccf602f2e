package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/runner"
	"github.com/vovakirdan/coin-runner/internal/storage"
)

// chromeRows is the number of terminal rows used around the field:
// HUD, progress bar, help and warning line.
const chromeRows = 4

// Options configures a game view.
type Options struct {
	Runner  config.RunnerConfig
	Board   string         // Leaderboard for finished runs and the best score
	Store   *storage.Store // May be nil: scores are then kept in memory only
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one game view.
type Model struct {
	session    *runner.Session
	field      config.FieldConfig
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	progress   progress.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates the game view and its session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionOpts := []runner.Option{runner.WithLogger(logger)}

	var best runner.BestScoreStore
	if opts.Store != nil {
		best = opts.Store.BestScores(opts.Board)
		store, board := opts.Store, opts.Board
		sessionOpts = append(sessionOpts, runner.WithGameOverHandler(func(sum runner.Summary) {
			if _, err := store.SaveSummary(board, sum); err != nil {
				logger.Warn("could not save run", "run", sum.RunID, "error", err)
			}
		}))
	}

	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Runner.TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	bar := progress.New(
		progress.WithGradient("#FFD75F", "#FF8700"),
		progress.WithoutPercentage(),
		progress.WithWidth(progressWidth(cfg.ScreenW)),
	)

	return Model{
		session:    runner.NewSession(opts.Runner, best, sessionOpts...),
		field:      opts.Runner.Field,
		screen:     core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		progress:   bar,
		inputFrame: core.NewInputFrame(),
	}
}

func fieldRows(screenH int) int {
	return max(screenH-chromeRows, 5)
}

func progressWidth(screenW int) int {
	return max(screenW-2, 10)
}

// Session returns the session driven by the model.
func (m Model) Session() *runner.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the intent for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.session.Phase()

	if m.keyMapper.MapKeyToFrame(msg, phase, &m.inputFrame) {
		return m.quit()
	}

	// Esc on the start screen leaves the game view.
	if phase == runner.PhaseIdle && m.inputFrame.Has(core.ActionClose) {
		return m.quit()
	}

	return m, nil
}

// quit ends a live run so its score is recorded, then exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.RequestClose()
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events. The session is unaffected:
// the field is in logical units and only the mapping to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.help.Width = msg.Width
	m.progress.Width = progressWidth(msg.Width)
	return m, nil
}

// handleTick applies queued intents and advances the session one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if !m.inputFrame.Empty() {
		m.session.Apply(m.inputFrame)
		m.inputFrame.Clear()
	}
	m.session.Tick()

	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	DrawField(m.screen, snap, m.field)

	warning := ""
	if snap.Warning != "" {
		warning = warningStyle.Render("! " + snap.Warning)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hudStyle.Render(hudLine(snap)),
		RenderScreen(m.screen),
		" "+m.progress.ViewAs(snap.Progress),
		helpStyle.Render(m.help.View(m.keyMapper.Keys())),
		warning,
	)
}

// Run starts the Bubble Tea program for one game view.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
