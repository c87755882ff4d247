package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for one palette.
type Theme struct {
	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	ActivePage   lipgloss.Style
	Error        lipgloss.Style
}

// LightTheme is the default palette.
func LightTheme() Theme {
	accent := lipgloss.Color("#6C63FF")
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Card:         lipgloss.NewStyle(),
		SelectedCard: lipgloss.NewStyle().Bold(true).Foreground(accent),
		ActivePage:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4D")),
	}
}

// DarkTheme brightens the accent for dark terminals.
func DarkTheme() Theme {
	accent := lipgloss.Color("#9D96FF")
	return Theme{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Card:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		SelectedCard: lipgloss.NewStyle().Bold(true).Foreground(accent),
		ActivePage:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}
