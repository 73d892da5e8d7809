package preview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0tsuro/SparkCar/internal/comparison"
)

const (
	defaultWidth = 80
	minBarWidth  = 10
	barLeft      = 2
	barRow       = 4

	// the terminal has a single pointer
	mousePointer comparison.PointerID = 0
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	formulaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	beforeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	afterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	handleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

type stateMsg comparison.State

type loopClosedMsg struct{}

// Model renders the comparison slider in a terminal. It never touches the
// controller directly: input goes through the loop and snapshots come back
// from Updates.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	loop   *comparison.Loop
	slides comparison.SlideSet
	state  comparison.State
	width  int
	err    error
}

func NewModel(ctx context.Context, cancel context.CancelFunc, loop *comparison.Loop, slides comparison.SlideSet) *Model {
	return &Model{
		ctx:    ctx,
		cancel: cancel,
		loop:   loop,
		slides: slides,
		state:  comparison.State{Position: comparison.InitialPosition},
		width:  defaultWidth,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForState()
}

func (m *Model) waitForState() tea.Cmd {
	updates := m.loop.Updates()
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return loopClosedMsg{}
		}
		return stateMsg(s)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case stateMsg:
		m.state = comparison.State(msg)
		return m, m.waitForState()

	case loopClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "left":
			m.send(comparison.KeyDown(comparison.KeyArrowLeft))
		case "right":
			m.send(comparison.KeyDown(comparison.KeyArrowRight))
		case "n":
			m.send(comparison.Event{Kind: comparison.EventNext})
		case "p":
			m.send(comparison.Event{Kind: comparison.EventPrevious})
		default:
			if idx, ok := indicatorKey(msg.String(), m.slides.Len()); ok {
				m.send(comparison.Select(idx))
			}
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := float64(msg.X)
	rect := m.barRect()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		target := comparison.TargetSurface
		if m.onHandle(msg.X, msg.Y) {
			target = comparison.TargetHandle
		}
		m.send(comparison.PointerDown(target, mousePointer, x, rect))
	case tea.MouseActionMotion:
		m.send(comparison.PointerMove(mousePointer, x, rect))
	case tea.MouseActionRelease:
		m.send(comparison.PointerUp(mousePointer))
	}
}

func (m *Model) send(ev comparison.Event) {
	err := m.loop.Send(m.ctx, ev)
	if err == nil || errors.Is(err, comparison.ErrLoopStopped) || errors.Is(err, context.Canceled) {
		return
	}
	m.err = err
}

func (m *Model) barWidth() int {
	return max(m.width-2*barLeft, minBarWidth)
}

// barRect maps the bar cells onto [0, 100]: the first cell is 0, the last 100.
func (m *Model) barRect() comparison.Rect {
	return comparison.Rect{Left: barLeft, Width: float64(m.barWidth() - 1)}
}

func (m *Model) handleColumn() int {
	return barLeft + int(math.Round(m.state.Position/100*float64(m.barWidth()-1)))
}

func (m *Model) onHandle(x, y int) bool {
	if y != barRow {
		return false
	}
	d := x - m.handleColumn()
	return d >= -1 && d <= 1
}

func (m *Model) View() string {
	var b strings.Builder
	pair := m.slides.At(m.state.ActiveIndex)
	pad := strings.Repeat(" ", barLeft)

	b.WriteString(pad + titleStyle.Render("SparkCar · Avant / Après") + "\n\n")
	b.WriteString(pad + pair.Title + "\n")
	b.WriteString(pad + formulaStyle.Render(pair.Formula) + "\n")
	b.WriteString(pad + m.renderBar() + "\n")
	b.WriteString(pad + m.renderIndicators() + "\n\n")

	for _, line := range pair.Details {
		b.WriteString(pad + dimStyle.Render("• "+line) + "\n")
	}

	b.WriteString("\n" + pad + dimStyle.Render(fmt.Sprintf(
		"avant %.0f%% · après %.0f%%", m.state.Position, m.state.RevealInset())) + "\n")
	if m.err != nil {
		b.WriteString(pad + errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(pad + dimStyle.Render("←/→ naviguer · glisser la poignée · 1-9 aller à · q quitter") + "\n")

	return b.String()
}

func (m *Model) renderBar() string {
	width := m.barWidth()
	handle := m.handleColumn() - barLeft

	var before, after strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < handle:
			before.WriteString("░")
		case i > handle:
			after.WriteString("█")
		}
	}

	marker := "┃"
	if m.state.Dragging {
		marker = "║"
	}
	return beforeStyle.Render(before.String()) + handleStyle.Render(marker) + afterStyle.Render(after.String())
}

func (m *Model) renderIndicators() string {
	dots := make([]string, m.slides.Len())
	for i := range dots {
		if i == m.state.ActiveIndex {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	arrow := "→"
	if m.state.Direction == comparison.Backward {
		arrow = "←"
	}
	return strings.Join(dots, " ") + " " + dimStyle.Render(arrow)
}

// indicatorKey maps "1".."9" to a slide index.
func indicatorKey(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	if idx >= n {
		return 0, false
	}
	return idx, true
}
