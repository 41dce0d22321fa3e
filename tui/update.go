package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/app"
	"github.com/starter-coder/File-Sorter/internal"
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

var (
	errNoSource = errors.New("please select a valid source folder")
	errNoDest   = errors.New("please select a valid destination folder")
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateConfig:
			return m.updateConfigPhase(msg)
		case StateComplete:
			return m.updateCompletePhase(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case spinner.TickMsg:
		if m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case sortDoneMsg:
		m.state = StateComplete
		m.report = msg.report
		m.err = msg.err
		m.logSortResult()
		return m, nil

	case deleteDoneMsg:
		m.state = StateComplete
		m.err = msg.err
		if msg.err == nil {
			m.deleted = msg.path
		}
		return m, nil

	case countDoneMsg:
		m.state = StateComplete
		m.count = msg.count
		m.err = msg.err
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" || msg.String() == "Y" {
			return m, m.start(internal.ActionDelete)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		if msg.String() == "down" && m.focus == FocusAction {
			break
		}
		m.nextFocus()
		return m, m.updateFocusState()
	case "shift+tab", "up":
		if msg.String() == "up" && m.focus == FocusAction {
			break
		}
		m.prevFocus()
		return m, m.updateFocusState()
	case "enter":
		return m.handleEnterKey()
	}

	return m, m.updateFocused(msg)
}

func (m *model) updateCompletePhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		m.reset()
		return m, m.updateFocusState()
	}
	return m, nil
}

func (m *model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusSource:
		m.sourceInput, cmd = m.sourceInput.Update(msg)
	case FocusDest:
		m.destInput, cmd = m.destInput.Update(msg)
	case FocusAction:
		m.actionList, cmd = m.actionList.Update(msg)
	}
	return cmd
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusSource:
		m.focus = FocusDest
	case FocusDest:
		m.focus = FocusAction
	case FocusAction:
		m.focus = FocusSource
	}
}

func (m *model) prevFocus() {
	switch m.focus {
	case FocusSource:
		m.focus = FocusAction
	case FocusDest:
		m.focus = FocusSource
	case FocusAction:
		m.focus = FocusDest
	}
}

func (m *model) updateFocusState() tea.Cmd {
	m.sourceInput.Blur()
	m.destInput.Blur()

	switch m.focus {
	case FocusSource:
		return m.sourceInput.Focus()
	case FocusDest:
		return m.destInput.Focus()
	}
	return nil
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focus != FocusAction {
		m.nextFocus()
		return m, m.updateFocusState()
	}

	item, ok := m.actionList.SelectedItem().(actionItem)
	if !ok {
		return m, nil
	}

	if err := m.validate(item.action); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil

	if item.action == internal.ActionDelete {
		m.confirming = true
		return m, nil
	}

	return m, m.start(item.action)
}

// validate requires the source folder, and the destination for sorts.
func (m *model) validate(action internal.Action) error {
	if ok, _ := afero.DirExists(m.fs, m.sourceInput.Value()); !ok {
		return errNoSource
	}
	if action == internal.ActionSort || action == internal.ActionSortAndDelete {
		if ok, _ := afero.DirExists(m.fs, m.destInput.Value()); !ok {
			return errNoDest
		}
	}
	return nil
}

// start switches to the running view and runs action on a background
// goroutine through a tea.Cmd.
func (m *model) start(action internal.Action) tea.Cmd {
	m.state = StateRunning
	m.action = action
	m.report = nil
	m.err = nil
	m.deleted = ""

	return tea.Batch(m.spinner.Tick, m.actionCmd(action))
}

func (m *model) actionCmd(action internal.Action) tea.Cmd {
	fsys := m.fs
	source := m.sourceInput.Value()
	dest := m.destInput.Value()
	cfg := *m.cfg

	switch action {
	case internal.ActionSort, internal.ActionSortAndDelete:
		opts := &app.SortOptions{
			Source:       source,
			Destination:  dest,
			DeleteSource: action == internal.ActionSortAndDelete,
			VerifyCopy:   cfg.VerifyCopy,
			Journal:      cfg.Journal,
			JournalPath:  cfg.JournalPath,
			Fs:           fsys,
		}
		return func() tea.Msg {
			report, err := app.RunSort(opts)
			return sortDoneMsg{report: report, err: err}
		}

	case internal.ActionDelete:
		return func() tea.Msg {
			return deleteDoneMsg{path: source, err: app.RunDelete(fsys, source)}
		}

	case internal.ActionCount:
		return func() tea.Msg {
			count, err := app.RunCount(fsys, []string{source})
			return countDoneMsg{count: count, err: err}
		}
	}

	return func() tea.Msg {
		return sortDoneMsg{err: fmt.Errorf("unknown action %q", action)}
	}
}

func (m *model) reset() {
	m.state = StateConfig
	m.focus = FocusSource
	m.report = nil
	m.count = 0
	m.deleted = ""
	m.err = nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width

	m.sourceInput.Width = msg.Width - 10
	m.destInput.Width = msg.Width - 10
	m.actionList.SetWidth(msg.Width - 6)
}

func (m *model) logSortResult() {
	if m.err != nil {
		logger.Get().Error().Err(m.err).Msg("sort failed")
		return
	}
	logger.Get().Info().
		Int("moved", m.report.Result.Moved).
		Int("failed", len(m.report.Result.Failures)).
		Int("remaining", m.report.Remaining).
		Msg("sort finished")
}
