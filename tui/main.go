package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/starter-coder/File-Sorter/pkg/logger"
)

type Config struct {
	Source      string
	Destination string
	VerifyCopy  bool
	Journal     bool
	JournalPath string

	// Fs defaults to the OS filesystem
	Fs afero.Fs
}

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return tm.m.Init()
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := tm.m.Update(msg)
	return tm, cmd
}

func (tm teaModel) View() string {
	return tm.m.View()
}

func Run(cfg *Config) error {
	logger.Get().Info().Msg("starting TUI")

	m := initialModel(cfg)
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	_, err := p.Run()
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI error")
	} else {
		logger.Get().Info().Msg("TUI exited")
	}

	return err
}
