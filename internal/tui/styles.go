package tui

import "github.com/charmbracelet/lipgloss"

// ─── Viewer Chrome Styles ───────────────────────────────────────────────────

func headerStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func subtitleStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Subtext)
}

func helpStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Dim)
}

func helpKeyStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Bold(true)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
}
