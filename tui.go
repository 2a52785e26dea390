package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keypoll/engine"
	"keypoll/hotkey"
	"keypoll/keycode"
)

// TUI message types
type KeyEventMsg struct{ Event engine.Event }
type HotkeyMsg struct {
	On   bool
	Mode hotkey.Mode
}
type StreamEndMsg struct{ Err error }

const maxEventLines = 12

type tuiModel struct {
	watching      int
	pressed       []keycode.Code
	events        []engine.Event
	total         int
	hotkey        bool
	hotkeyOn      bool
	hotkeyMode    hotkey.Mode
	width, height int
	err           error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	chipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("46")).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

func newTUIModel(watching int, withHotkey bool) tuiModel {
	return tuiModel{watching: watching, hotkey: withHotkey}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case KeyEventMsg:
		m.total++
		m.events = append(m.events, msg.Event)
		if len(m.events) > maxEventLines {
			m.events = m.events[len(m.events)-maxEventLines:]
		}
		ev := msg.Event
		if ev.State == engine.Pressed {
			if !slices.Contains(m.pressed, ev.Code) {
				m.pressed = append(m.pressed, ev.Code)
				slices.Sort(m.pressed)
			}
		} else {
			m.pressed = slices.DeleteFunc(m.pressed, func(c keycode.Code) bool { return c == ev.Code })
		}

	case HotkeyMsg:
		m.hotkeyOn = msg.On
		m.hotkeyMode = msg.Mode

	case StreamEndMsg:
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("keypoll  watching %d key(s)", m.watching)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d event(s)", m.total)))
	b.WriteString("\n\n")

	if len(m.pressed) == 0 {
		b.WriteString(dimStyle.Render("nothing pressed"))
	} else {
		chips := make([]string, len(m.pressed))
		for i, c := range m.pressed {
			chips[i] = chipStyle.Render(c.String())
		}
		b.WriteString(strings.Join(chips, " "))
	}
	b.WriteString("\n")

	if m.hotkey {
		b.WriteString("\n")
		if m.hotkeyOn {
			b.WriteString(hotkeyStyle.Render(fmt.Sprintf("hotkey on (%s)", m.hotkeyMode)))
		} else {
			b.WriteString(dimStyle.Render("hotkey off"))
		}
		b.WriteString("\n")
	}

	lines := make([]string, 0, len(m.events))
	for _, ev := range slices.Backward(m.events) {
		lines = append(lines, formatEvent(ev, true))
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("waiting for input..."))
	}
	box := boxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	b.WriteString("\n")
	b.WriteString(box.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q to quit"))
	return b.String()
}

func runTUI(ctx context.Context, cancel context.CancelFunc, e *engine.Engine, s *engine.Stream, hy *hotkey.Hybrid) error {
	p := tea.NewProgram(newTUIModel(len(e.Registered()), hy != nil), tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		for ev := range s.Events() {
			p.Send(KeyEventMsg{Event: ev})
		}
		p.Send(StreamEndMsg{Err: s.Err()})
	}()
	if hy != nil {
		go func() {
			for {
				select {
				case st := <-hy.Start():
					p.Send(HotkeyMsg{On: true, Mode: st.Mode})
				case <-hy.StopChan():
					p.Send(HotkeyMsg{On: false})
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	final, err := p.Run()
	cancel()
	if err != nil && ctx.Err() == nil {
		return err
	}
	if m, ok := final.(tuiModel); ok {
		return m.err
	}
	return nil
}
