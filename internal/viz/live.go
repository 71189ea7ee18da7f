package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sketchlab/internal/sketch"
)

const (
	historyCapacity = 300
	maxSpeed        = 16
)

// energySource is implemented by sketches that can report per-body energy.
type energySource interface {
	Energies() []float64
}

// looper is implemented by sketches that repeat after a fixed frame count.
type looper interface {
	FramesPerLoop() int
}

type TickMsg time.Time

// Model drives a sketch host from Bubble Tea ticks and renders its surface.
type Model struct {
	host     *sketch.Host
	interval time.Duration
	running  bool
	speed    int
	theme    Theme
	showHelp bool
	err      error

	energyHistory []float64
}

// NewModel wraps a host whose surface prints itself, usually a Braille
// surface. fps sets the tick rate.
func NewModel(host *sketch.Host, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		host:          host,
		interval:      time.Second / time.Duration(fps),
		running:       true,
		speed:         1,
		theme:         ThemeCyberpunk,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Err returns the error that stopped the viewer, if any.
func (m Model) Err() error { return m.err }

func (m Model) Running() bool { return m.running }
func (m Model) Speed() int    { return m.speed }

// Update handles input events and steps the sketch.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.host.Setup(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.energyHistory = m.energyHistory[:0]
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.speed; i++ {
				if err := m.host.Step(); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
			m.recordEnergy()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) recordEnergy() {
	src, ok := m.host.Sketch().(energySource)
	if !ok {
		return
	}
	total := 0.0
	for _, e := range src.Energies() {
		total += e
	}
	m.energyHistory = append(m.energyHistory, total)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// View renders the surface next to a stats panel.
func (m Model) View() string {
	var canvas string
	if s, ok := m.host.Surface().(fmt.Stringer); ok {
		canvas = s.String()
	}
	canvasView := canvasStyle.Render(canvas)

	name := m.host.Sketch().Name()
	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(name), m.theme.Primary, m.theme.Secondary) + "\n\n")

	status := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Success).Render("RUNNING")
	if !m.running {
		status = lipgloss.NewStyle().Bold(true).Foreground(m.theme.Warning).Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.host.Frame())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%dx", m.speed)) + "\n")

	if l, ok := m.host.Sketch().(looper); ok && l.FramesPerLoop() > 0 {
		n := l.FramesPerLoop()
		pct := float64(m.host.Frame()%n) / float64(n)
		s.WriteString(labelStyle.Render("Loop") + ProgressBar(pct, 20, m.theme.Primary) + "\n")
	}

	if src, ok := m.host.Sketch().(energySource); ok {
		energies := src.Energies()
		if len(energies) > 0 {
			s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(Sparkline(energies)) + "\n")
		}
		if len(m.energyHistory) > 1 {
			chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Total energy"))
			s.WriteString(graphStyle.Foreground(m.theme.Secondary).Render(chart) + "\n")
		}
	}

	s.WriteString(helpStyle.Foreground(m.theme.Muted).Render("SP:Pause R:Reset Q:Quit\n+/-:Speed T:Theme ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		help := helpBox.Render(strings.Join([]string{
			"Space  pause / resume",
			"R      rerun setup",
			"+ -    frames per tick",
			"T      cycle theme (" + m.theme.Name + ")",
			"?      toggle help",
			"Q      quit",
		}, "\n"))
		return help + "\n" + main
	}
	return main
}

// Run takes over the terminal until the user quits.
func Run(host *sketch.Host, fps int) error {
	if err := host.Setup(); err != nil {
		return err
	}
	final, err := tea.NewProgram(NewModel(host, fps), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
