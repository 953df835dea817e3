package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	m.refreshGridIfDirty()
	switch m.mode {
	case modePrompt:
		return m.viewPrompt()
	case modeListing:
		return m.viewListing()
	}
	return m.viewBrowse()
}

func (m *model) gridLines() []string {
	m.refreshGridIfDirty()
	return m.grid.Lines
}

func (m *model) viewBrowse() string {
	parts := []string{
		strings.Join(m.gridLines(), "\n"),
		m.statusBar(),
		m.viewport.View(),
	}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) viewPrompt() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(m.promptTitle()))
	b.WriteRune('\n')
	b.WriteString(m.prompt.View())
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("Press Enter to apply, Esc to cancel."))
	return joinNonEmpty([]string{strings.Join(m.gridLines(), "\n"), b.String()})
}

func (m *model) viewListing() string {
	return joinNonEmpty([]string{
		m.listing.View(),
		helperStyle.Render("d reverses the direction; Esc or q returns to the table."),
	})
}

func (m *model) promptTitle() string {
	switch m.promptKind {
	case promptFind:
		return "Find Element"
	case promptScheme:
		return "Choose Classification"
	case promptReference:
		return "Set Reference Value"
	case promptListing:
		return "Sorted Listing"
	}
	return ""
}

func (m *model) statusBar() string {
	stats := []string{
		fmt.Sprintf("%s (%s) Z=%d", m.store.Name(m.current), m.store.Symbol(m.current), m.current),
		fmt.Sprintf("Scheme %s", m.schemeLabel()),
		fmt.Sprintf("Layout %s", m.conv),
	}
	if ref, ok := m.engine.Reference(); ok && m.classifierOK {
		stats = append(stats, fmt.Sprintf("Ref %g", ref))
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) schemeLabel() string {
	if !m.classifierOK {
		return "none"
	}
	return m.engine.Scheme().Label()
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) helpView() string {
	hints := []keyHint{
		{"n/p", "Next or previous element"},
		{"/", "Find by name, symbol or number"},
		{"g/G", "Jump to properties or isotopes"},
		{"c", "Cycle classification scheme"},
		{"t", "Classify by a named property"},
		{"v", "Toggle display convention"},
		{"+/-", "Adjust reference value"},
		{"=", "Set reference value"},
		{"s", "Sorted property listing"},
		{"w", "Open web lookup"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return helpBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
