// Package view provides UI rendering functions.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/marvel-battle-poker/internal/ui/common"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into OnlineModel.
func CreateViewRenderer() func(model.Model, model.Screen) string {
	return func(m model.Model, screen model.Screen) string {
		var body string
		switch screen {
		case model.ScreenTable:
			body = TableView(m)
		case model.ScreenLeaderboard:
			body = LeaderboardView(m)
		case model.ScreenStats:
			body = StatsView(m)
		case model.ScreenRules:
			body = RulesView(m.Width())
		default:
			body = "Unknown screen"
		}
		if bar := NotificationBar(m); bar != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, bar, body)
		}
		return body
	}
}

// NotificationBar renders the highest priority notification.
func NotificationBar(m model.Model) string {
	n := m.CurrentNotification()
	if n == nil {
		return ""
	}
	switch n.Type {
	case model.NotifyError, model.NotifyRateLimit:
		return common.ErrorStyle.Render(n.Message)
	default:
		return common.HighlightText.Render(n.Message)
	}
}
