// Package ui wires the bubbletea model to the network client, views and key handling.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/network/client"
	"github.com/palemoky/marvel-battle-poker/internal/ui/handler"
	"github.com/palemoky/marvel-battle-poker/internal/ui/input"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
	"github.com/palemoky/marvel-battle-poker/internal/ui/view"
)

// NewOnlineModel creates a fully wired OnlineModel for the given server.
func NewOnlineModel(serverURL string, opts client.Options) *model.OnlineModel {
	c := client.NewClient(serverURL, opts)
	m := Wire(model.NewOnlineModel(c))

	reconnectChan := m.ReconnectChan()
	c.OnReconnecting = func(attempt, maxTries int) {
		select {
		case reconnectChan <- model.ReconnectingMsg{Attempt: attempt, MaxTries: maxTries}:
		default:
		}
	}
	c.OnReconnect = func() {
		select {
		case reconnectChan <- model.ReconnectSuccessMsg{}:
		default:
		}
	}
	return m
}

// Wire injects the view, input and server message handlers.
func Wire(m *model.OnlineModel) *model.OnlineModel {
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	m.SetServerMessageHandler(handler.HandleServerMessage)
	return m
}

// Run starts the terminal program and blocks until it exits.
func Run(serverURL string, opts client.Options) error {
	p := tea.NewProgram(NewOnlineModel(serverURL, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
