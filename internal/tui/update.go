package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgGateChecked:
		if msg.Err != nil {
			m.err = msg.Err
			m.mode = ModeLocked
			return m, nil
		}
		if !msg.Elevated {
			m.mode = ModeLocked
		}
		return m, nil

	case MsgPlanLoaded:
		m.baseDir = msg.BaseDir
		m.source = msg.Source
		m.targets = msg.Targets
		return m, nil

	case MsgUninstallDone:
		m.mode = ModeDone
		m.results = msg.Results
		m.dryRun = msg.DryRun
		return m, nil

	case MsgError:
		if errors.Is(msg.Err, domain.ErrElevationRequired) {
			m.mode = ModeLocked
			return m, nil
		}
		m.err = msg.Err
		if m.mode == ModeRunning {
			m.mode = ModeConfirm
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles key events.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode { //nolint:exhaustive // ModeRunning ignores keys
	case ModeConfirm:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.err = nil
			m.mode = ModeRunning
			return m, m.runUninstall(false)

		case key.Matches(msg, m.keys.DryRun):
			m.err = nil
			m.mode = ModeRunning
			return m, m.runUninstall(true)
		}

	case ModeDone, ModeLocked:
		if key.Matches(msg, m.keys.Confirm) {
			return m, tea.Quit
		}
	}

	return m, nil
}
