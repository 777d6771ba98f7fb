// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	TurnIcon   = "👉"
	FoldIcon   = "💤"
	WinnerIcon = "🏆"
	ChipIcon   = "🪙"
	PowerIcon  = "⚡"
)

// Lipgloss styles shared by every screen
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	ActiveBox     = BoxStyle.BorderForeground(lipgloss.Color("228"))
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	HighlightText = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	SelectedCard  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("228")).Padding(0, 1)
	CardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	HiddenCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Foreground(lipgloss.Color("240")).Padding(0, 1)
)

// teamColors card colour per team name
var teamColors = map[string]lipgloss.Color{
	"Avengers":  lipgloss.Color("#E23636"),
	"X-Men":     lipgloss.Color("#F5C518"),
	"Guardians": lipgloss.Color("#2DB4E8"),
	"Villains":  lipgloss.Color("#8E44AD"),
	"Mystic":    lipgloss.Color("#27AE60"),
}

// TeamStyle returns the text style for cards of a team.
func TeamStyle(team string) lipgloss.Style {
	c, ok := teamColors[team]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
