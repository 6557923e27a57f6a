package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies
	container *app.Container
	err       error

	// State
	baseDir string
	source  string
	targets []domain.Target
	results []domain.TargetResult

	// Components
	keys   KeyMap
	styles Styles

	// Numeric state
	mode   Mode
	width  int
	height int

	// Boolean state
	dryRun bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	return &Model{
		container: c,
		mode:      ModeConfirm,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.checkGate(),
		m.loadPlan(),
	)
}

// checkGate returns a command that checks for elevated privileges.
// The check runs before anything can be confirmed so a non-elevated
// user lands on the locked screen instead of a failing removal.
func (m *Model) checkGate() tea.Cmd {
	return func() tea.Msg {
		elevated, err := m.container.Privilege.Elevated()
		return MsgGateChecked{Elevated: elevated, Err: err}
	}
}

// loadPlan returns a command that resolves the target paths.
func (m *Model) loadPlan() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ResolveTargetsUseCase().Execute(context.Background(), usecase.ResolveTargetsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPlanLoaded{BaseDir: out.BaseDir, Source: out.Source, Targets: out.Targets}
	}
}

// runUninstall returns a command that removes the launcher artifacts.
func (m *Model) runUninstall(dryRun bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.UninstallUseCase().Execute(context.Background(), usecase.UninstallInput{DryRun: dryRun})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgUninstallDone{Results: out.Results, DryRun: dryRun}
	}
}
