package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

const appPadding = 4

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var base string
	switch m.mode { //nolint:exhaustive // ModeConfirm handled in default
	case ModeLocked:
		base = m.viewLocked()
	case ModeRunning:
		base = m.viewRunning()
	case ModeDone:
		base = m.viewDone()
	default:
		base = m.viewConfirm()
	}

	return m.styles.App.Render(base)
}

// contentWidth returns the available content width.
func (m *Model) contentWidth() int {
	w := m.width - appPadding
	if w < 0 {
		w = 0
	}
	return w
}

// viewHeader renders the header line.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("TikTok-Sayer Uninstaller")
	return m.styles.Header.Width(m.contentWidth()).Render(title)
}

// viewConfirm renders the confirmation screen.
func (m *Model) viewConfirm() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.styles.Value.Render("The following files will be removed:"))
	b.WriteString("\n\n")
	b.WriteString(m.viewTargetList())
	b.WriteString("\n")

	if m.baseDir != "" {
		line := m.styles.Label.Render("Base directory: ") +
			m.styles.Value.Render(m.baseDir) +
			m.styles.Muted.Render(fmt.Sprintf(" (%s)", m.source))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter(
		hint{"enter", "remove"},
		hint{"d", "dry run"},
		hint{"q", "quit"},
	))

	return b.String()
}

// viewTargetList renders the planned targets.
func (m *Model) viewTargetList() string {
	if len(m.targets) == 0 {
		return m.styles.Loading.Render("Resolving target paths...") + "\n"
	}

	var b strings.Builder
	for _, t := range m.targets {
		name := m.styles.TargetName.Render(t.Name)
		path := m.styles.TargetPath.Render(t.Path)
		b.WriteString(m.styles.TargetItem.Render(name + "  " + path))
		b.WriteString("\n")
	}
	return b.String()
}

// viewRunning renders the in-progress screen.
func (m *Model) viewRunning() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.styles.Loading.Render("Removing files..."))
	b.WriteString("\n")
	return b.String()
}

// viewDone renders the results screen.
func (m *Model) viewDone() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	for _, r := range m.results {
		name := m.styles.TargetName.Render(r.Target.Name)
		badge := m.outcomeStyle(r.Outcome).Render(r.Outcome.Display())
		line := name + "  " + badge
		if r.Outcome == domain.OutcomeFailed && r.Reason != "" {
			line += m.styles.Muted.Render("  " + r.Reason)
		}
		b.WriteString(m.styles.TargetItem.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Value.Render(m.summaryLine()))
	b.WriteString("\n")
	b.WriteString(m.viewFooter(hint{"q", "quit"}))

	return b.String()
}

// summaryLine returns the closing message for the results screen.
func (m *Model) summaryLine() string {
	if m.dryRun {
		return "Dry run: no changes made."
	}
	return "TikTok-Sayer has been removed from this computer."
}

// viewLocked renders the screen shown when elevation is missing.
func (m *Model) viewLocked() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.styles.ErrorMsg.Render("Administrator privileges are required to uninstall TikTok-Sayer."))
	b.WriteString("\n")
	b.WriteString(m.styles.Value.Render(`Right-click the uninstaller and select "Run as administrator", then try again.`))
	b.WriteString("\n")
	b.WriteString(m.viewFooter(hint{"q", "quit"}))

	return b.String()
}

// hint is a single footer key hint.
type hint struct {
	key  string
	desc string
}

// viewFooter renders the footer with key hints.
func (m *Model) viewFooter(hints ...hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.styles.FooterKey.Render(h.key)+" "+h.desc)
	}
	content := strings.Join(parts, "  ")
	return m.styles.Footer.Width(m.contentWidth()).Render(content)
}

// outcomeStyle returns the badge style for an outcome.
func (m *Model) outcomeStyle(o domain.Outcome) lipgloss.Style {
	switch o {
	case domain.OutcomeRemoved:
		return m.styles.OutcomeRemoved
	case domain.OutcomeNotFound:
		return m.styles.OutcomeNotFound
	case domain.OutcomeWouldRemove:
		return m.styles.OutcomeWouldRemove
	case domain.OutcomeFailed:
		return m.styles.OutcomeFailed
	}
	return m.styles.Value
}
