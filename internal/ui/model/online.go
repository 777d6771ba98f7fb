// Package model contains the UI model implementations.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gameClient "github.com/palemoky/marvel-battle-poker/internal/client"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/sound"
	"github.com/palemoky/marvel-battle-poker/internal/ui/common"
)

// NotificationTTL is how long temporary notifications stay on screen.
const NotificationTTL = 3 * time.Second

// OnlineModel is the bubbletea model of the table client.
type OnlineModel struct {
	client GameClient
	screen Screen
	error  string

	state *gameClient.GameState

	// Reconnect state
	reconnecting  bool
	reconnectChan chan tea.Msg

	maintenanceMode bool
	notifications   map[NotificationType]*SystemNotification

	// Overlays and cursors
	showingHelp    bool
	trackerEnabled bool
	target         int

	leaderboardKind string
	leaderboard     []protocol.LeaderboardEntry
	stats           *protocol.StatsResultPayload

	soundManager *sound.SoundManager

	// UI components
	betInput textinput.Model
	keys     KeyMap
	help     help.Model
	width    int
	height   int

	// Injected to break circular import
	viewRenderer         func(Model, Screen) string
	keyHandler           func(Model, tea.KeyMsg) (bool, tea.Cmd)
	serverMessageHandler func(Model, *protocol.Message) tea.Cmd
}

// NewOnlineModel creates a new OnlineModel.
func NewOnlineModel(c GameClient) *OnlineModel {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.CharLimit = 6
	ti.Width = 10
	ti.Validate = digitsOnly

	return &OnlineModel{
		client:          c,
		screen:          ScreenConnecting,
		state:           gameClient.NewGameState(),
		reconnectChan:   make(chan tea.Msg, 10),
		notifications:   make(map[NotificationType]*SystemNotification),
		leaderboardKind: "total",
		soundManager:    sound.NewSoundManager(),
		betInput:        ti,
		keys:            DefaultKeyMap(),
		help:            help.New(),
	}
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("not a number: %q", s)
		}
	}
	return nil
}

func (m *OnlineModel) Init() tea.Cmd {
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		m.listenForReconnect(),
	)
}

func (m *OnlineModel) listenForReconnect() tea.Cmd {
	return func() tea.Msg {
		return <-m.reconnectChan
	}
}

func (m *OnlineModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

// --- Model interface implementation ---

func (m *OnlineModel) Screen() Screen                      { return m.screen }
func (m *OnlineModel) SetScreen(s Screen)                  { m.screen = s }
func (m *OnlineModel) Client() GameClient                  { return m.client }
func (m *OnlineModel) State() *gameClient.GameState        { return m.state }
func (m *OnlineModel) BetInput() *textinput.Model          { return &m.betInput }
func (m *OnlineModel) Keys() *KeyMap                       { return &m.keys }
func (m *OnlineModel) Help() *help.Model                   { return &m.help }
func (m *OnlineModel) ShowingHelp() bool                   { return m.showingHelp }
func (m *OnlineModel) SetShowingHelp(v bool)               { m.showingHelp = v }
func (m *OnlineModel) TrackerEnabled() bool                { return m.trackerEnabled }
func (m *OnlineModel) SetTrackerEnabled(v bool)            { m.trackerEnabled = v }
func (m *OnlineModel) Target() int                         { return m.target }
func (m *OnlineModel) SetTarget(id int)                    { m.target = id }
func (m *OnlineModel) Stats() *protocol.StatsResultPayload { return m.stats }
func (m *OnlineModel) IsMaintenanceMode() bool             { return m.maintenanceMode }
func (m *OnlineModel) SetMaintenanceMode(v bool)           { m.maintenanceMode = v }
func (m *OnlineModel) Width() int                          { return m.width }
func (m *OnlineModel) Height() int                         { return m.height }

func (m *OnlineModel) SetStats(s *protocol.StatsResultPayload) { m.stats = s }

func (m *OnlineModel) Leaderboard() (string, []protocol.LeaderboardEntry) {
	return m.leaderboardKind, m.leaderboard
}

func (m *OnlineModel) SetLeaderboard(kind string, entries []protocol.LeaderboardEntry) {
	m.leaderboardKind = kind
	m.leaderboard = entries
}

func (m *OnlineModel) PlayCue(c sound.Cue) { m.soundManager.PlayCue(c) }

func (m *OnlineModel) SetNotification(notifyType NotificationType, message string, temporary bool) {
	m.notifications[notifyType] = &SystemNotification{
		Message:   message,
		Type:      notifyType,
		Temporary: temporary,
	}
}

func (m *OnlineModel) ClearNotification(notifyType NotificationType) {
	delete(m.notifications, notifyType)
}

func (m *OnlineModel) CurrentNotification() *SystemNotification {
	priorityOrder := []NotificationType{
		NotifyError,
		NotifyRateLimit,
		NotifyReconnecting,
		NotifyReconnectSuccess,
		NotifyMaintenance,
	}
	for _, notifyType := range priorityOrder {
		if n, ok := m.notifications[notifyType]; ok {
			return n
		}
	}
	return nil
}

// ReconnectChan receives reconnect progress from the network client callbacks.
func (m *OnlineModel) ReconnectChan() chan tea.Msg { return m.reconnectChan }

// Error returns the connection error shown on the connecting screen.
func (m *OnlineModel) Error() string { return m.error }

// SetViewRenderer sets the view rendering function.
func (m *OnlineModel) SetViewRenderer(fn func(Model, Screen) string) { m.viewRenderer = fn }

// SetKeyHandler sets the keyboard event handler function.
func (m *OnlineModel) SetKeyHandler(fn func(Model, tea.KeyMsg) (bool, tea.Cmd)) { m.keyHandler = fn }

// SetServerMessageHandler sets the server message handler function.
func (m *OnlineModel) SetServerMessageHandler(fn func(Model, *protocol.Message) tea.Cmd) {
	m.serverMessageHandler = fn
}

// Update handles tea messages.
func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ConnectedMsg:
		m.screen = ScreenTable
		m.error = ""
		m.client.StartHeartbeat()
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.error = fmt.Sprintf("Cannot reach server: %v\n\nPress q to quit", msg.Err)
		m.screen = ScreenConnecting

	case ReconnectingMsg:
		m.reconnecting = true
		m.SetNotification(NotifyReconnecting, fmt.Sprintf("🔄 Reconnecting (%d/%d)...", msg.Attempt, msg.MaxTries), false)
		cmds = append(cmds, m.listenForReconnect())

	case ReconnectSuccessMsg:
		m.reconnecting = false
		m.ClearNotification(NotifyReconnecting)
		m.ClearNotification(NotifyError)
		m.SetNotification(NotifyReconnectSuccess, "✅ Reconnected", true)
		cmds = append(cmds,
			tea.Tick(NotificationTTL, func(time.Time) tea.Msg { return ClearReconnectMsg{} }),
			m.listenForReconnect(),
		)

	case ClearReconnectMsg:
		m.ClearNotification(NotifyReconnectSuccess)

	case ClearSystemNotificationMsg:
		m.ClearNotification(NotifyError)
		m.ClearNotification(NotifyRateLimit)

	case ServerMessage:
		if m.serverMessageHandler != nil {
			if cmd := m.serverMessageHandler(m, msg.Msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.keys.SetPhase(m.state.View.Phase, m.state.IsMyTurn(), m.state.View.TableBet)
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case tea.KeyMsg:
		if m.keyHandler != nil {
			handled, cmd := m.keyHandler(m, msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			if handled {
				return m, tea.Batch(cmds...)
			}
		}
	}

	if m.betInput.Focused() {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the model.
func (m *OnlineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch {
	case m.screen == ScreenConnecting:
		content = m.connectingView()
	case m.viewRenderer != nil:
		content = m.viewRenderer(m, m.screen)
	default:
		content = "View renderer not initialized"
	}
	return common.DocStyle.Render(content)
}

func (m *OnlineModel) connectingView() string {
	text := "Connecting to server..."
	if m.error != "" {
		text = common.ErrorStyle.Render(m.error)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}
