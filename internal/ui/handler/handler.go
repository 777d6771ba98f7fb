// Package handler processes server messages.
package handler

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

// messageHandler 消息处理函数类型
type messageHandler func(m model.Model, msg *protocol.Message) tea.Cmd

// messageHandlers 消息处理器映射表
var messageHandlers = map[protocol.MessageType]messageHandler{
	protocol.MsgConnected: handleMsgConnected,
	protocol.MsgPong:      func(model.Model, *protocol.Message) tea.Cmd { return nil },
	protocol.MsgError:     handleMsgError,

	protocol.MsgSnapshot: handleMsgSnapshot,
	protocol.MsgEvent:    handleMsgEvent,

	protocol.MsgStatsResult:       handleMsgStatsResult,
	protocol.MsgLeaderboardResult: handleMsgLeaderboardResult,
}

// HandleServerMessage dispatches server messages to appropriate handlers.
func HandleServerMessage(m model.Model, msg *protocol.Message) tea.Cmd {
	if handler, ok := messageHandlers[msg.Type]; ok {
		return handler(m, msg)
	}
	return nil
}

// clearLater schedules removal of temporary notifications
func clearLater() tea.Cmd {
	return tea.Tick(model.NotificationTTL, func(_ time.Time) tea.Msg {
		return model.ClearSystemNotificationMsg{}
	})
}
