package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/ui/model"
)

func handleMsgStatsResult(m model.Model, msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.StatsResultPayload](msg)
	if err != nil {
		return nil
	}
	m.SetStats(payload)
	return nil
}

func handleMsgLeaderboardResult(m model.Model, msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.LeaderboardResultPayload](msg)
	if err != nil {
		return nil
	}
	m.SetLeaderboard(payload.Type, payload.Entries)
	return nil
}
