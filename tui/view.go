package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/starter-coder/File-Sorter/internal"
)

const maxFailuresShown = 10

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateRunning:
		return m.runningView()
	case StateComplete:
		return m.completeView()
	default:
		return "unknown state"
	}
}

func (m *model) boxed(focus Focus, content string) string {
	if m.focus == focus {
		return focusedStyle.Render(content)
	}
	return normalStyle.Render(content)
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("File Sorter") + "\n")
	b.WriteString("Sorts files into Music, Documents, Videos, Compressed, Photos,\n")
	b.WriteString("Programs and Miscellaneous. Close all files in the source folder first.\n\n")

	b.WriteString(labelStyle.Render("Source folder") + "\n")
	b.WriteString(m.boxed(FocusSource, m.sourceInput.View()) + "\n")

	b.WriteString(labelStyle.Render("Destination folder") + "\n")
	b.WriteString(m.boxed(FocusDest, m.destInput.View()) + "\n")

	b.WriteString(m.boxed(FocusAction, m.actionList.View()) + "\n")

	if m.confirming {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Delete %s entirely? [y/N]", m.sourceInput.Value())) + "\n")
	} else if m.err != nil {
		b.WriteString(failureStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Tab switch focus • Enter confirm • Esc/Ctrl+C quit") + "\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) runningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(runningTitle(m.action)) + "\n\n")
	b.WriteString(m.spinner.View() + " " + m.sourceInput.Value() + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func runningTitle(action internal.Action) string {
	switch action {
	case internal.ActionDelete:
		return "Deleting..."
	case internal.ActionCount:
		return "Counting files..."
	default:
		return "Sorting files..."
	}
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorTitleStyle.Render("Failed") + "\n\n")
		b.WriteString(failureStyle.Render(m.err.Error()) + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("Done") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderResult()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Enter to go back, q to quit") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderResult() string {
	var b strings.Builder

	switch m.action {
	case internal.ActionCount:
		b.WriteString(fmt.Sprintf("File count in source folder = %d", m.count))
		return b.String()
	case internal.ActionDelete:
		b.WriteString(fmt.Sprintf("Deleted %s", m.deleted))
		return b.String()
	}

	r := m.report
	b.WriteString(fmt.Sprintf("  Moved:                %d\n", r.Result.Moved))
	b.WriteString(fmt.Sprintf("  Failed:               %d\n", len(r.Result.Failures)))
	b.WriteString(fmt.Sprintf("  Files left in source: %d\n", r.Remaining))

	if m.action == internal.ActionSortAndDelete {
		if r.Deleted {
			b.WriteString("  Source folder deleted\n")
		} else if r.DeleteErr != nil {
			b.WriteString(warnStyle.Render(fmt.Sprintf("  Source kept: %v", r.DeleteErr)) + "\n")
		}
	}

	for i, f := range r.Result.Failures {
		if i == maxFailuresShown {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Result.Failures)-maxFailuresShown))
			break
		}
		b.WriteString(failureStyle.Render("  ! "+f.Error()) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
