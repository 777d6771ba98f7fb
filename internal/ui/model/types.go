// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	gameClient "github.com/palemoky/marvel-battle-poker/internal/client"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/sound"
)

// Screen is the page the terminal is showing.
type Screen int

const (
	ScreenConnecting Screen = iota
	ScreenTable
	ScreenLeaderboard
	ScreenStats
	ScreenRules
)

// NotificationType represents types of system notifications.
type NotificationType int

const (
	NotifyError            NotificationType = iota // 错误信息（临时）
	NotifyRateLimit                                // 限频提示（临时）
	NotifyReconnecting                             // 重连中（持久）
	NotifyReconnectSuccess                         // 重连成功（临时）
	NotifyMaintenance                              // 维护通知（持久）
)

// SystemNotification represents a system notification.
type SystemNotification struct {
	Message   string
	Type      NotificationType
	Temporary bool // 是否为临时通知（3秒后自动消失）
}

// --- Tea Messages ---

// ServerMessage wraps a protocol message for tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg indicates successful connection.
type ConnectedMsg struct{}

// ConnectionErrorMsg indicates a connection error.
type ConnectionErrorMsg struct {
	Err error
}

// ReconnectingMsg indicates reconnection in progress.
type ReconnectingMsg struct {
	Attempt  int
	MaxTries int
}

// ReconnectSuccessMsg indicates successful reconnection.
type ReconnectSuccessMsg struct{}

// ClearReconnectMsg clears reconnection message.
type ClearReconnectMsg struct{}

// ClearSystemNotificationMsg clears temporary notifications.
type ClearSystemNotificationMsg struct{}

// --- Client ---

// GameClient is the part of the network client the UI drives.
type GameClient interface {
	Connect() error
	Receive() (*protocol.Message, error)
	StartHeartbeat()
	Close()
	IsConnected() bool
	IsReconnecting() bool
	GetLatency() int64

	NewGame(instant bool) error
	Bet(action string, amount int) error
	Check() error
	Call() error
	Fold() error
	SelectCard(index int) error
	UsePower(targetID int) error
	SkipPower() error
	ConfirmSwap() error
	StandPat() error
	GetLeaderboard(kind string, limit int) error
	GetStats() error
}

// --- Model Interface ---

// Model is the main interface for OnlineModel, used by handler/view/input packages.
type Model interface {
	Screen() Screen
	SetScreen(Screen)

	Client() GameClient
	State() *gameClient.GameState

	// UI components
	BetInput() *textinput.Model
	Keys() *KeyMap
	Help() *help.Model

	// Overlays
	ShowingHelp() bool
	SetShowingHelp(bool)
	TrackerEnabled() bool
	SetTrackerEnabled(bool)

	// Power target cursor, 0 when nothing is chosen
	Target() int
	SetTarget(int)

	// Leaderboard and stats
	Leaderboard() (kind string, entries []protocol.LeaderboardEntry)
	SetLeaderboard(kind string, entries []protocol.LeaderboardEntry)
	Stats() *protocol.StatsResultPayload
	SetStats(*protocol.StatsResultPayload)

	// Notification management
	SetNotification(notifyType NotificationType, message string, temporary bool)
	ClearNotification(notifyType NotificationType)
	CurrentNotification() *SystemNotification
	IsMaintenanceMode() bool
	SetMaintenanceMode(bool)

	PlayCue(sound.Cue)

	Width() int
	Height() int
}

// --- Handler Interface ---

// Handler processes server messages.
type Handler interface {
	HandleServerMessage(m Model, msg *protocol.Message) tea.Cmd
}

// InputHandler processes keyboard input.
type InputHandler interface {
	HandleKeyPress(m Model, msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
}
