package storage

import (
	"context"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// Store 牌桌存档与排行榜
type Store interface {
	// SaveTable 保存牌桌状态
	SaveTable(ctx context.Context, tableID string, st *session.State) error
	// LoadTable 加载牌桌状态，不存在时返回 nil, nil
	LoadTable(ctx context.Context, tableID string) (*session.State, error)
	// DeleteTable 删除牌桌存档
	DeleteTable(ctx context.Context, tableID string) error
	// RecordResult 记录一手牌的结果
	RecordResult(ctx context.Context, r HandResult) error
	// TopWinners 按累计赢得筹码返回排行榜
	TopWinners(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	// TopWinnersToday 当日排行榜
	TopWinnersToday(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	// PlayerStats 玩家统计，不存在时返回 nil, nil
	PlayerStats(ctx context.Context, name string) (*PlayerStats, error)
	// PlayerRank 玩家在总榜的名次，未上榜返回 -1
	PlayerRank(ctx context.Context, name string) (int64, error)
	Close() error
}

// HandResult 一名玩家在一手牌中的结果
type HandResult struct {
	PlayerName string
	Won        bool
	Winnings   int // 赢得的筹码，未获胜为 0
	Pot        int // 该手牌底池总额
}

// NopStore 不做持久化，Redis 未启用时使用
type NopStore struct{}

var _ Store = NopStore{}

func (NopStore) SaveTable(context.Context, string, *session.State) error { return nil }

func (NopStore) LoadTable(context.Context, string) (*session.State, error) { return nil, nil }

func (NopStore) DeleteTable(context.Context, string) error { return nil }

func (NopStore) RecordResult(context.Context, HandResult) error { return nil }

func (NopStore) TopWinners(context.Context, int) ([]LeaderboardEntry, error) { return nil, nil }

func (NopStore) TopWinnersToday(context.Context, int) ([]LeaderboardEntry, error) { return nil, nil }

func (NopStore) PlayerStats(context.Context, string) (*PlayerStats, error) { return nil, nil }

func (NopStore) PlayerRank(context.Context, string) (int64, error) { return -1, nil }

func (NopStore) Close() error { return nil }
