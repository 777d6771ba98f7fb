package input

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/testutil"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tableModel() (*model.OnlineModel, *testutil.FakeGameClient) {
	fake := testutil.NewFakeGameClient()
	m := model.NewOnlineModel(fake)
	m.SetScreen(model.ScreenTable)
	m.State().ApplySnapshot(testutil.PowersView())
	return m, fake
}

func TestHandleKeyPress_Intents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
		want string
	}{
		{"new hand", runes("n"), "new_game true"},
		{"animated deal", runes("N"), "new_game false"},
		{"check", runes("k"), "bet check 0"},
		{"call", runes("a"), "bet call 0"},
		{"fold", runes("f"), "bet fold 0"},
		{"select first card", runes("1"), "select_card 0"},
		{"select last card", runes("5"), "select_card 4"},
		{"use power without target", runes("u"), "use_power 0"},
		{"skip power", runes("x"), "skip_power"},
		{"confirm swap", tea.KeyMsg{Type: tea.KeyEnter}, "confirm_swap"},
		{"stand pat", runes("p"), "stand_pat"},
		{"stats", runes("s"), "get_stats"},
		{"leaderboard", runes("l"), "get_leaderboard total 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, fake := tableModel()
			handled, _ := HandleKeyPress(m, tt.key)
			assert.True(t, handled)
			assert.Equal(t, []string{tt.want}, fake.Calls())
		})
	}
}

func TestHandleKeyPress_BetAmount(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	handled, _ := HandleKeyPress(m, runes("b"))
	assert.True(t, handled)
	require.True(t, m.BetInput().Focused())
	assert.Empty(t, fake.Calls())

	// 输入框聚焦时，普通按键交给输入框
	handled, _ = HandleKeyPress(m, runes("k"))
	assert.False(t, handled)

	m.BetInput().SetValue("30")
	handled, _ = HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.False(t, m.BetInput().Focused())
	assert.Equal(t, []string{"bet bet 30"}, fake.Calls())
}

func TestHandleKeyPress_BadBetAmount(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "0", "abc"} {
		m, fake := tableModel()
		HandleKeyPress(m, runes("b"))
		m.BetInput().SetValue(value)
		_, cmd := HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.NotNil(t, cmd, value)
		assert.Empty(t, fake.Calls(), value)
		require.NotNil(t, m.CurrentNotification(), value)
		assert.Equal(t, model.NotifyError, m.CurrentNotification().Type)
	}
}

func TestHandleKeyPress_BetEscCancels(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	HandleKeyPress(m, runes("b"))
	m.BetInput().SetValue("25")
	handled, _ := HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.False(t, m.BetInput().Focused())
	assert.Empty(t, m.BetInput().Value())
	assert.Empty(t, fake.Calls())
}

func TestHandleKeyPress_TargetCycle(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	tab := tea.KeyMsg{Type: tea.KeyTab}

	// 座位 3 已弃牌，被跳过
	var seen []int
	for range 3 {
		HandleKeyPress(m, tab)
		seen = append(seen, m.Target())
	}
	assert.Equal(t, []int{2, 4, 2}, seen)

	HandleKeyPress(m, runes("u"))
	assert.Equal(t, []string{"use_power 2"}, fake.Calls())

	HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Zero(t, m.Target())
}

func TestHandleKeyPress_Toggles(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	HandleKeyPress(m, runes("c"))
	assert.True(t, m.TrackerEnabled())
	HandleKeyPress(m, runes("?"))
	assert.True(t, m.ShowingHelp())
	HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowingHelp())
	HandleKeyPress(m, runes("r"))
	assert.Equal(t, model.ScreenRules, m.Screen())
	HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ScreenTable, m.Screen())
	assert.Empty(t, fake.Calls())
}

func TestHandleKeyPress_LeaderboardToggle(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	HandleKeyPress(m, runes("l"))
	assert.Equal(t, model.ScreenLeaderboard, m.Screen())
	HandleKeyPress(m, runes("d"))
	HandleKeyPress(m, runes("d"))
	assert.Equal(t, []string{
		"get_leaderboard total 10",
		"get_leaderboard daily 10",
		"get_leaderboard total 10",
	}, fake.Calls())

	// 排行榜页面不响应牌桌按键
	handled, _ := HandleKeyPress(m, runes("k"))
	assert.False(t, handled)
}

func TestHandleKeyPress_MaintenanceBlocksNewHand(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	m.SetMaintenanceMode(true)
	_, cmd := HandleKeyPress(m, runes("n"))
	assert.NotNil(t, cmd)
	assert.Empty(t, fake.Calls())
	assert.Equal(t, model.NotifyError, m.CurrentNotification().Type)
}

func TestHandleKeyPress_SendFailure(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	fake.SendErr = errors.New("closed")
	_, cmd := HandleKeyPress(m, runes("k"))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.CurrentNotification().Message, "closed")
}

func TestHandleKeyPress_Quit(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	handled, cmd := HandleKeyPress(m, runes("q"))
	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, fake.IsConnected())
}

func TestHandleKeyPress_DisabledOutsidePhase(t *testing.T) {
	t.Parallel()

	m, fake := tableModel()
	m.Keys().SetPhase("powers", true, 0)
	handled, _ := HandleKeyPress(m, runes("k"))
	assert.False(t, handled)
	assert.Empty(t, fake.Calls())
}
