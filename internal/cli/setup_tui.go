package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The confirm screen shows the planned steps and lets the user toggle
// the optional ones before running. One screen: three toggles, then a
// Run/Cancel button row.

const (
	tuiToggleFFmpeg = iota
	tuiToggleTest
	tuiToggleFaster
	tuiButtonRow
)

type setupModel struct {
	cursor    int // 0..2 toggles, 3 button row
	button    int // 0 run, 1 cancel
	opts      setupOptions
	confirmed bool
	cancelled bool
	width     int
	height    int
}

// runSetupTUI shows the confirmation screen and returns the user's
// choices. confirmed is false when the user backed out.
func runSetupTUI(opts setupOptions) (confirmed bool, chosen setupOptions, err error) {
	p := tea.NewProgram(setupModel{opts: opts}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, opts, err
	}

	result := finalModel.(setupModel)
	if result.cancelled || !result.confirmed {
		return false, result.opts, nil
	}
	return true, result.opts, nil
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < tuiButtonRow {
				m.cursor++
			}
			return m, nil

		case "left", "h":
			if m.cursor == tuiButtonRow && m.button > 0 {
				m.button--
			}
			return m, nil

		case "right", "l":
			if m.cursor == tuiButtonRow && m.button < 1 {
				m.button++
			}
			return m, nil

		case " ":
			m.toggle()
			return m, nil

		case "enter":
			if m.cursor < tuiButtonRow {
				m.toggle()
				return m, nil
			}
			if m.button == 0 {
				m.confirmed = true
			} else {
				m.cancelled = true
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *setupModel) toggle() {
	switch m.cursor {
	case tuiToggleFFmpeg:
		m.opts.SkipFFmpeg = !m.opts.SkipFFmpeg
	case tuiToggleTest:
		m.opts.Test = !m.opts.Test
	case tuiToggleFaster:
		m.opts.FasterWhisper = !m.opts.FasterWhisper
	}
}

func (m setupModel) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2).
		Width(58)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	unselectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var content strings.Builder

	content.WriteString(titleStyle.Render("whisper-setup"))
	content.WriteString("\n\n")
	content.WriteString("This will install:\n")
	if m.opts.FasterWhisper {
		content.WriteString("  faster-whisper (accelerated backend)\n")
	} else {
		content.WriteString("  the openai-whisper package set via pip\n")
	}
	if !m.opts.SkipFFmpeg {
		content.WriteString("  ffmpeg via the system package manager\n")
	}
	content.WriteString("\n")

	toggles := []struct {
		label string
		on    bool
	}{
		{"Skip ffmpeg installation", m.opts.SkipFFmpeg},
		{"Verify with a model load afterwards", m.opts.Test},
		{"Use faster-whisper instead", m.opts.FasterWhisper},
	}
	for i, tgl := range toggles {
		line := "  "
		if m.cursor == i {
			line = selectedStyle.Render("> ")
		}
		box := "[ ]"
		if tgl.on {
			box = "[x]"
		}
		if m.cursor == i {
			content.WriteString(line + selectedStyle.Render(box+" "+tgl.label))
		} else {
			content.WriteString(line + unselectedStyle.Render(box+" "+tgl.label))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	buttons := []string{"Run Setup", "Cancel"}
	for i, btn := range buttons {
		if m.cursor == tuiButtonRow && m.button == i {
			content.WriteString(selectedStyle.Render("[ " + btn + " ]"))
		} else {
			content.WriteString(unselectedStyle.Render("[ " + btn + " ]"))
		}
		content.WriteString("  ")
	}

	box := boxStyle.Render(content.String())
	help := helpStyle.Render("↑↓: select • space: toggle • enter: confirm • esc: quit")
	result := box + "\n" + help

	if m.width > 0 && m.height > 0 {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}
