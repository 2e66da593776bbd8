package ui

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the live transmitter status display.
type Model struct {
	mode   string
	freq   float64
	frames *atomic.Uint64
	start  time.Time
	now    time.Time
}

// New builds the status model. frames is the shared counter the capture
// source increments per submitted frame.
func New(mode string, freqMHz float64, frames *atomic.Uint64) Model {
	now := time.Now()
	return Model{
		mode:   mode,
		freq:   freqMHz,
		frames: frames,
		start:  now,
		now:    now,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}
	s := titleStyle.Render("thermaltv — composite video out") + "\n\n"
	s += row("Mode", m.mode)
	s += row("Carrier", fmt.Sprintf("%.3f MHz", m.freq))
	s += row("Frames", fmt.Sprintf("%d", m.frames.Load()))
	s += row("Uptime", m.now.Sub(m.start).Round(time.Second).String())
	s += "\n" + helpStyle.Render("q to stop transmission and quit") + "\n"
	return s
}
