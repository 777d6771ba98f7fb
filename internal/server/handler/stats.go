package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
	"github.com/palemoky/marvel-battle-poker/internal/types"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 50
	queryTimeout            = 3 * time.Second
)

// --- 排行榜处理 ---

// handleGetLeaderboard 获取排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		// 默认获取总排行榜前 10
		payload = &protocol.GetLeaderboardPayload{Type: "total", Limit: defaultLeaderboardLimit}
	}

	// 限制请求数量
	if payload.Limit <= 0 || payload.Limit > maxLeaderboardLimit {
		payload.Limit = defaultLeaderboardLimit
	}
	if payload.Type != "daily" {
		payload.Type = "total"
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var entries []storage.LeaderboardEntry
	if payload.Type == "daily" {
		entries, err = h.store.TopWinnersToday(ctx, payload.Limit)
	} else {
		entries, err = h.store.TopWinners(ctx, payload.Limit)
	}
	if err != nil {
		h.log.Warn("leaderboard query failed", zap.Error(err))
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeStoreFailed))
		return
	}

	// 转换为协议格式
	protocolEntries := make([]protocol.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		protocolEntries = append(protocolEntries, protocol.LeaderboardEntry{
			Rank:       entry.Rank,
			PlayerName: entry.PlayerName,
			Winnings:   entry.Winnings,
			HandsWon:   entry.HandsWon,
			WinRate:    entry.WinRate,
		})
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Type:    payload.Type,
		Entries: protocolEntries,
	}))
}

// handleGetStats 获取真人座位的个人统计
func (h *Handler) handleGetStats(client types.ClientInterface) {
	name := client.GetName()
	if t := h.GetTable(client.GetID()); t != nil {
		name = t.PlayerName()
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	stats, err := h.store.PlayerStats(ctx, name)
	if err != nil {
		h.log.Warn("stats query failed", zap.String("player", name), zap.Error(err))
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeStoreFailed))
		return
	}
	if stats == nil {
		// 没有统计数据，返回空数据
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
			PlayerName: name,
		}))
		return
	}

	rank, _ := h.store.PlayerRank(ctx, name)
	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		PlayerName:    stats.PlayerName,
		HandsPlayed:   stats.HandsPlayed,
		HandsWon:      stats.HandsWon,
		WinRate:       stats.WinRate(),
		TotalWinnings: stats.TotalWinnings,
		BiggestPot:    stats.BiggestPot,
		CurrentStreak: stats.CurrentStreak,
		MaxWinStreak:  stats.MaxWinStreak,
		Rank:          int(max(rank, 0)),
	}))
}
