// Package input handles keyboard input processing.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

// LeaderboardLimit is how many rows the leaderboard screen asks for.
const LeaderboardLimit = 10

var errBadAmount = errors.New("enter a positive amount")

// notifyError shows a temporary error and schedules its removal
func notifyError(m model.Model, text string) tea.Cmd {
	m.SetNotification(model.NotifyError, "⚠️ "+text, true)
	return tea.Tick(model.NotificationTTL, func(_ time.Time) tea.Msg {
		return model.ClearSystemNotificationMsg{}
	})
}

// send reports a failed intent to the user; the server answers valid ones with a snapshot
func send(m model.Model, err error) tea.Cmd {
	if err != nil {
		return notifyError(m, fmt.Sprintf("send failed: %v", err))
	}
	return nil
}

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()

	// 下注金额输入框获得焦点时，按键只属于输入框
	if in := m.BetInput(); in.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			amount, err := parseAmount(in.Value())
			in.Reset()
			in.Blur()
			if err != nil {
				return true, notifyError(m, err.Error())
			}
			return true, send(m, m.Client().Bet("bet", amount))
		case tea.KeyEsc:
			in.Reset()
			in.Blur()
			return true, nil
		}
		return false, nil
	}

	if key.Matches(msg, keys.Quit) {
		m.Client().Close()
		return true, tea.Quit
	}
	if key.Matches(msg, keys.Back) {
		return true, handleBack(m)
	}

	switch m.Screen() {
	case model.ScreenTable:
		return handleTableKey(m, msg)
	case model.ScreenLeaderboard:
		if key.Matches(msg, keys.Daily) {
			kind, _ := m.Leaderboard()
			next := "daily"
			if kind == "daily" {
				next = "total"
			}
			m.SetLeaderboard(next, nil)
			return true, send(m, m.Client().GetLeaderboard(next, LeaderboardLimit))
		}
	}
	return false, nil
}

func handleBack(m model.Model) tea.Cmd {
	switch {
	case m.ShowingHelp():
		m.SetShowingHelp(false)
	case m.Screen() != model.ScreenTable && m.Screen() != model.ScreenConnecting:
		m.SetScreen(model.ScreenTable)
	default:
		m.SetTarget(0)
	}
	return nil
}

func handleTableKey(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()
	c := m.Client()

	switch {
	case key.Matches(msg, keys.Help):
		m.SetShowingHelp(!m.ShowingHelp())
	case key.Matches(msg, keys.Tracker):
		m.SetTrackerEnabled(!m.TrackerEnabled())
	case key.Matches(msg, keys.Leaderboard):
		m.SetScreen(model.ScreenLeaderboard)
		kind, _ := m.Leaderboard()
		return true, send(m, c.GetLeaderboard(kind, LeaderboardLimit))
	case key.Matches(msg, keys.Stats):
		m.SetScreen(model.ScreenStats)
		return true, send(m, c.GetStats())
	case key.Matches(msg, keys.Rules):
		m.SetScreen(model.ScreenRules)

	case key.Matches(msg, keys.NewGame), key.Matches(msg, keys.DealSlow):
		if m.IsMaintenanceMode() {
			return true, notifyError(m, "server maintenance: no new hands")
		}
		if m.Client().IsReconnecting() {
			return true, notifyError(m, "reconnecting, try again shortly")
		}
		m.SetTarget(0)
		return true, send(m, c.NewGame(key.Matches(msg, keys.NewGame)))

	case key.Matches(msg, keys.Check):
		return true, send(m, c.Check())
	case key.Matches(msg, keys.Call):
		return true, send(m, c.Call())
	case key.Matches(msg, keys.Fold):
		return true, send(m, c.Fold())
	case key.Matches(msg, keys.Bet):
		in := m.BetInput()
		in.Reset()
		in.Focus()

	case key.Matches(msg, keys.SelectCard):
		index := int(msg.Runes[0] - '1')
		return true, send(m, c.SelectCard(index))
	case key.Matches(msg, keys.NextTarget):
		m.SetTarget(nextTarget(m))
	case key.Matches(msg, keys.UsePower):
		return true, send(m, c.UsePower(m.Target()))
	case key.Matches(msg, keys.SkipPower):
		m.SetTarget(0)
		return true, send(m, c.SkipPower())
	case key.Matches(msg, keys.ConfirmSwap):
		return true, send(m, c.ConfirmSwap())
	case key.Matches(msg, keys.StandPat):
		return true, send(m, c.StandPat())

	default:
		return false, nil
	}
	return true, nil
}

// nextTarget cycles through opponents that are still in the hand.
func nextTarget(m model.Model) int {
	opponents := m.State().Opponents()
	if len(opponents) == 0 {
		return 0
	}
	current := m.Target()
	for i, p := range opponents {
		if p.ID == current {
			return opponents[(i+1)%len(opponents)].ID
		}
	}
	return opponents[0].ID
}

func parseAmount(s string) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || amount <= 0 {
		return 0, errBadAmount
	}
	return amount, nil
}
