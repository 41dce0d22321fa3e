package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/app"
	"github.com/starter-coder/File-Sorter/internal"
)

type State int

const (
	StateConfig State = iota
	StateRunning
	StateComplete
)

type Focus int

const (
	FocusSource Focus = iota
	FocusDest
	FocusAction
)

type model struct {
	state  State
	focus  Focus
	cfg    *Config
	fs     afero.Fs
	action internal.Action

	sourceInput textinput.Model
	destInput   textinput.Model
	actionList  list.Model
	spinner     spinner.Model

	report     *app.SortReport
	count      int
	deleted    string
	confirming bool
	err        error
	width      int
}

func initialModel(cfg *Config) model {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	actionList := list.New([]list.Item{
		actionItem{action: internal.ActionSort, title: "Sort", desc: "Move files from source into category folders of destination"},
		actionItem{action: internal.ActionSortAndDelete, title: "Sort and delete source", desc: "Sort, then delete the source folder if no files are left"},
		actionItem{action: internal.ActionCount, title: "File count", desc: "Count the files still in the source folder"},
		actionItem{action: internal.ActionDelete, title: "Delete source folder", desc: "Delete the source folder entirely"},
	}, list.NewDefaultDelegate(), 60, 14)

	actionList.Title = "Action"
	actionList.SetShowStatusBar(false)
	actionList.SetFilteringEnabled(false)
	actionList.SetShowHelp(false)
	actionList.Styles.Title = titleStyle

	sourceInput := textinput.New()
	sourceInput.Placeholder = "folder to sort"
	sourceInput.Prompt = "> "
	sourceInput.PromptStyle = focusedPromptStyle
	sourceInput.TextStyle = textStyle
	sourceInput.SetValue(cfg.Source)
	sourceInput.Focus()

	destInput := textinput.New()
	destInput.Placeholder = "destination folder"
	destInput.Prompt = "> "
	destInput.PromptStyle = focusedPromptStyle
	destInput.TextStyle = textStyle
	destInput.SetValue(cfg.Destination)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:       StateConfig,
		focus:       FocusSource,
		cfg:         cfg,
		fs:          fsys,
		sourceInput: sourceInput,
		destInput:   destInput,
		actionList:  actionList,
		spinner:     s,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

type actionItem struct {
	action internal.Action
	title  string
	desc   string
}

func (a actionItem) Title() string       { return a.title }
func (a actionItem) Description() string { return a.desc }
func (a actionItem) FilterValue() string { return a.title }
