package handler

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

func handleMsgConnected(m model.Model, msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.ConnectedPayload](msg)
	if err != nil {
		return nil
	}
	m.State().ApplyConnected(*payload)
	m.SetScreen(model.ScreenTable)
	if payload.Restored {
		m.SetNotification(model.NotifyReconnectSuccess, fmt.Sprintf("✅ Table %s restored", payload.TableID), true)
		return clearLater()
	}
	return nil
}

func handleMsgError(m model.Model, msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		return nil
	}

	switch payload.Code {
	case protocol.ErrCodeServerMaintenance:
		m.SetMaintenanceMode(true)
		m.SetNotification(model.NotifyMaintenance, "🔧 Server maintenance: no new hands", false)
		return nil
	case protocol.ErrCodeRateLimit:
		m.SetNotification(model.NotifyRateLimit, "⚠️ Slow down: "+payload.Message, true)
	default:
		m.SetNotification(model.NotifyError, "⚠️ "+payload.Message, true)
	}
	return clearLater()
}
