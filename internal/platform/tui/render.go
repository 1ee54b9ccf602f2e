package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/runner"
)

// Glyphs used on the field.
const (
	glyphPlayer   = '█'
	glyphObstacle = '▓'
	glyphCoin     = '●'
	glyphGround   = '▔'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps logical field units onto screen cells. The bottom row of the
// screen is the ground; the field occupies every row above it.
type viewport struct {
	cols, rows int
	scaleX     float64
	scaleY     float64
}

func newViewport(s *core.Screen, field config.FieldConfig) viewport {
	rows := max(s.Height()-1, 1)
	return viewport{
		cols:   s.Width(),
		rows:   rows,
		scaleX: float64(s.Width()) / field.Width,
		scaleY: float64(rows) / field.Height,
	}
}

// cellRect returns the cells covered by b. Anything visible gets at least one cell.
func (v viewport) cellRect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left * v.scaleX))
	x1 := int(math.Ceil(b.Right * v.scaleX))
	y0 := int(math.Floor(b.Top * v.scaleY))
	y1 := int(math.Ceil(b.Bottom * v.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	y1 = min(y1, v.rows)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawField draws the ground, coins, obstacles and player of snap, then the
// phase panel if the run is not in progress.
func DrawField(s *core.Screen, snap runner.Snapshot, field config.FieldConfig) {
	s.Clear()
	v := newViewport(s, field)

	s.DrawHLine(0, v.rows, v.cols, glyphGround, core.ColorGray)

	for _, b := range snap.CoinBoxes {
		s.DrawRect(v.cellRect(b), glyphCoin, core.ColorBrightYellow)
	}
	for _, b := range snap.Obstacles {
		s.DrawRect(v.cellRect(b), glyphObstacle, core.ColorRed)
	}

	playerColor := core.ColorCyan
	if snap.Phase == runner.PhaseGameOver {
		playerColor = core.ColorBrightRed
	}
	s.DrawRect(v.cellRect(snap.Player), glyphPlayer, playerColor)

	if lines := panelLines(snap); len(lines) > 0 {
		drawPanel(s, lines)
	}
}

// panelLines returns the overlay text for the current phase.
func panelLines(snap runner.Snapshot) []string {
	switch snap.Phase {
	case runner.PhaseIdle:
		return []string{
			"C O I N   R U N N E R",
			"",
			"Jump over obstacles, grab the coins.",
			"Press Space or Enter to start",
		}
	case runner.PhasePaused:
		return []string{
			"PAUSED",
			"",
			"P or Esc to resume",
		}
	case runner.PhaseGameOver:
		best := fmt.Sprintf("Best %d", snap.BestScore)
		if snap.NewBest {
			best += "  NEW BEST!"
		}
		return []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Coins %d", snap.Score, snap.Coins),
			best,
			"",
			"Space or Enter to play again, Esc to close",
		}
	}
	return nil
}

// drawPanel draws a bordered box in the middle of the screen with centered lines.
func drawPanel(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	r := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r)

	for i, l := range lines {
		x := (s.Width() - len([]rune(l))) / 2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		s.DrawTextColored(x, r.Y+1+i, l, color)
	}
}

// hudLine formats the counters shown above the field.
func hudLine(snap runner.Snapshot) string {
	return fmt.Sprintf("SCORE %d   COINS %d   BEST %d   SPEED x%.1f   %s",
		snap.Score, snap.Coins, snap.BestScore, snap.Multiplier, formatElapsed(snap))
}

func formatElapsed(snap runner.Snapshot) string {
	secs := int(snap.Elapsed.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
