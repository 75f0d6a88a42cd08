// Package player replays a rendered recording in the terminal using the
// Bubble Tea framework. Event data is appended to a scrollback view at the
// recorded times, scaled by a speed factor. This is playback, not terminal
// emulation: control sequences in the data are shown as the terminal
// interprets them.
package player

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/scenacast/internal/cast"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

type model struct {
	header cast.Header
	events []cast.Event
	speed  float64

	next   int
	out    strings.Builder
	paused bool
	done   bool
}

type eventMsg int

func newModel(h cast.Header, events []cast.Event, speed float64) *model {
	return &model{header: h, events: events, speed: speed}
}

func (m *model) Init() tea.Cmd {
	return m.schedule()
}

// schedule arms a tick firing when the next event is due.
func (m *model) schedule() tea.Cmd {
	if m.next >= len(m.events) {
		return nil
	}
	idx := m.next
	return tea.Tick(Delay(m.events, idx, m.speed), func(time.Time) tea.Msg {
		return eventMsg(idx)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.schedule()
			}
		}
		return m, nil

	case eventMsg:
		if m.paused || int(msg) != m.next {
			return m, nil
		}
		m.out.WriteString(m.events[m.next].Data)
		m.next++
		if m.next >= len(m.events) {
			m.done = true
			return m, nil
		}
		return m, m.schedule()
	}
	return m, nil
}

func (m *model) View() string {
	status := statusStyle.Render(fmt.Sprintf("[%dx%d, %d/%d events, %.1fx]  space pause  q quit",
		m.header.Width, m.header.Height, m.next, len(m.events), m.speed))
	switch {
	case m.done:
		status = doneStyle.Render("playback finished, q to quit")
	case m.paused:
		status = statusStyle.Render("paused, space to resume")
	}
	return m.out.String() + "\n" + status + "\n"
}

// Delay returns how long to wait before event idx, relative to the event
// before it, scaled by speed.
func Delay(events []cast.Event, idx int, speed float64) time.Duration {
	if idx < 0 || idx >= len(events) || speed <= 0 {
		return 0
	}
	prev := 0.0
	if idx > 0 {
		prev = events[idx-1].Time
	}
	d := events[idx].Time - prev
	if d < 0 {
		d = 0
	}
	return time.Duration(d / speed * float64(time.Second))
}

// Play loads a recording from path and replays it interactively.
func Play(path string, speed float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	h, events, err := cast.Read(f)
	f.Close()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(h, events, speed))
	_, err = p.Run()
	return err
}
