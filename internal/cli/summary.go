package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type stepState int

const (
	stateOK stepState = iota
	stateWarn
	stateFail
	stateSkipped
)

type stepReport struct {
	Name   string
	State  stepState
	Detail string
}

// setupSummary accumulates per-step outcomes for the final report.
// Mandatory failures drive the exit code; warnings only change the
// headline.
type setupSummary struct {
	steps []stepReport
}

func (s *setupSummary) add(name string, state stepState, detail string) {
	s.steps = append(s.steps, stepReport{Name: name, State: state, Detail: detail})
}

// exitCode maps the aggregated outcome to a process exit status:
// any failed step means 1, everything else (including warnings) is 0.
func (s *setupSummary) exitCode() int {
	for _, step := range s.steps {
		if step.State == stateFail {
			return 1
		}
	}
	return 0
}

func (s *setupSummary) hasWarnings() bool {
	for _, step := range s.steps {
		if step.State == stateWarn {
			return true
		}
	}
	return false
}

// print renders the summary box with per-step markers and a headline.
func (s *setupSummary) print() {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2)

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skipStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headStyle := lipgloss.NewStyle().Bold(true)

	var content strings.Builder

	switch {
	case s.exitCode() != 0:
		content.WriteString(headStyle.Render(failStyle.Render("Setup failed")))
	case s.hasWarnings():
		content.WriteString(headStyle.Render(warnStyle.Render("Setup finished with warnings")))
	default:
		content.WriteString(headStyle.Render(okStyle.Render("Setup complete")))
	}
	content.WriteString("\n\n")

	for i, step := range s.steps {
		var marker string
		switch step.State {
		case stateOK:
			marker = okStyle.Render("✓")
		case stateWarn:
			marker = warnStyle.Render("!")
		case stateFail:
			marker = failStyle.Render("✗")
		case stateSkipped:
			marker = skipStyle.Render("-")
		}
		content.WriteString(fmt.Sprintf("%s %s", marker, step.Name))
		if step.Detail != "" {
			content.WriteString(skipStyle.Render("  " + step.Detail))
		}
		if i < len(s.steps)-1 {
			content.WriteString("\n")
		}
	}

	fmt.Println()
	fmt.Println(boxStyle.Render(content.String()))
}
