package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/testutil"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

func tableModel() *model.OnlineModel {
	m := model.NewOnlineModel(testutil.NewFakeGameClient())
	m.SetScreen(model.ScreenTable)
	m.State().ApplySnapshot(testutil.PowersView())
	return m
}

func TestTableView_WaitingForSnapshot(t *testing.T) {
	t.Parallel()

	m := model.NewOnlineModel(testutil.NewFakeGameClient())
	assert.Equal(t, "Waiting for the table...", TableView(m))
}

func TestTableView_Contents(t *testing.T) {
	t.Parallel()

	out := TableView(tableModel())

	tests := []struct {
		name     string
		contains string
	}{
		{"hand number", "hand #3"},
		{"pot", "Pot"},
		{"phase title", "Powers"},
		{"own card", "Iron Man"},
		{"card slot", "[5]"},
		{"hand total", "Total power 40"},
		{"power summary", "Look at another player's hand"},
		{"instruction", "Select a player to target"},
		{"opponent", "Captain Marvel"},
		{"hidden cards", "🂠"},
		{"revealed opponent card", "Jubilee"},
		{"fold marker", "💤"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestTableView_Overlays(t *testing.T) {
	t.Parallel()

	m := tableModel()
	assert.NotContains(t, TableView(m), "Unseen by power")

	m.SetTrackerEnabled(true)
	m.SetShowingHelp(true)
	m.SetTarget(2)
	out := TableView(m)
	assert.Contains(t, out, "Unseen by power")
	assert.Contains(t, out, "stand pat")
	assert.Contains(t, out, "🎯")
}

func TestRenderRankings(t *testing.T) {
	t.Parallel()

	out := RenderRankings([]protocol.RankingInfo{
		{PlayerID: 1, Name: "You", Rank: 3, Category: "TEAM-UP", Winner: true, Winnings: 120},
		{PlayerID: 2, Name: "Captain Marvel", Rank: 2, Category: "HERO PAIR"},
	})
	assert.Contains(t, out, "🏆")
	assert.Contains(t, out, "TEAM-UP")
	assert.Contains(t, out, "+120")
	assert.Contains(t, out, "HERO PAIR")
}

func TestRenderTracker(t *testing.T) {
	t.Parallel()

	m := tableModel()
	out := RenderTracker(m.State().Tracker)
	// 自己 5 张加上 Star-Lord 亮出的 3 张
	assert.Contains(t, out, "10:2")
	assert.Contains(t, out, "Avengers 7")
	assert.Contains(t, out, "Mystic")
}

func TestLeaderboardView(t *testing.T) {
	t.Parallel()

	m := tableModel()
	assert.Contains(t, LeaderboardView(m), "No results yet")

	m.SetLeaderboard("daily", []protocol.LeaderboardEntry{
		{Rank: 1, PlayerName: "Tony", Winnings: 340, HandsWon: 5, WinRate: 62.5},
	})
	out := LeaderboardView(m)
	assert.Contains(t, out, "(daily)")
	assert.Contains(t, out, "Tony")
	assert.Contains(t, out, "340")
	assert.Contains(t, out, "62.5%")
}

func TestStatsView(t *testing.T) {
	t.Parallel()

	m := tableModel()
	assert.Contains(t, StatsView(m), "Loading...")

	m.SetStats(&protocol.StatsResultPayload{PlayerName: "Tony", HandsPlayed: 8, HandsWon: 2, WinRate: 25})
	out := StatsView(m)
	assert.Contains(t, out, "Tony")
	assert.Contains(t, out, "2 (25.0%)")
	assert.Contains(t, out, "unranked")
}

func TestRenderGameRules(t *testing.T) {
	t.Parallel()

	out := RenderGameRules()
	for _, c := range rule.Categories() {
		assert.Contains(t, out, c.String())
	}
	assert.Contains(t, out, "Doctor Strange")
}

func TestViewRenderer_NotificationBar(t *testing.T) {
	t.Parallel()

	render := CreateViewRenderer()
	m := tableModel()
	m.SetNotification(model.NotifyError, "⚠️ It's not your turn", true)
	assert.Contains(t, render(m, model.ScreenTable), "It's not your turn")
	assert.Contains(t, render(m, model.ScreenRules), "Rules")
	assert.Contains(t, render(m, model.Screen(99)), "Unknown screen")
}
