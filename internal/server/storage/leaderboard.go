package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey   = "player:stats:"
	leaderboardKey   = "leaderboard:winnings"
	dailyLeaderboard = "leaderboard:daily:"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerName string `json:"player_name"`

	HandsPlayed   int `json:"hands_played"`
	HandsWon      int `json:"hands_won"`
	TotalWinnings int `json:"total_winnings"`
	BiggestPot    int `json:"biggest_pot"`

	// 正数为连胜，负数为连败
	CurrentStreak int `json:"current_streak"`
	MaxWinStreak  int `json:"max_win_streak"`

	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// WinRate 胜率（百分比）
func (s *PlayerStats) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}
	return float64(s.HandsWon) / float64(s.HandsPlayed) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerName string  `json:"player_name"`
	Winnings   int64   `json:"winnings"`
	HandsWon   int     `json:"hands_won"`
	WinRate    float64 `json:"win_rate"`
}

// PlayerStats 获取玩家统计，不存在时返回 nil, nil
func (rs *RedisStore) PlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	data, err := rs.client.Get(ctx, playerStatsKey+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (rs *RedisStore) savePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, playerStatsKey+stats.PlayerName, data, 0).Err()
}

// applyResult 更新统计和连胜/连败
func applyResult(stats *PlayerStats, r HandResult, now time.Time) {
	stats.HandsPlayed++
	stats.LastPlayedAt = now.Unix()
	if stats.CreatedAt == 0 {
		stats.CreatedAt = now.Unix()
	}

	if r.Won {
		stats.HandsWon++
		stats.TotalWinnings += r.Winnings
		stats.BiggestPot = max(stats.BiggestPot, r.Pot)
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
	} else {
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
	}
	stats.MaxWinStreak = max(stats.MaxWinStreak, stats.CurrentStreak)
}

// RecordResult 记录一手牌的结果并更新排行榜
func (rs *RedisStore) RecordResult(ctx context.Context, r HandResult) error {
	if r.PlayerName == "" {
		return errors.New("玩家名称为空")
	}

	stats, err := rs.PlayerStats(ctx, r.PlayerName)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{PlayerName: r.PlayerName}
	}
	now := time.Now()
	applyResult(stats, r, now)

	if err := rs.savePlayerStats(ctx, stats); err != nil {
		return err
	}
	if !r.Won || r.Winnings <= 0 {
		return nil
	}

	pipe := rs.client.TxPipeline()
	pipe.ZIncrBy(ctx, leaderboardKey, float64(r.Winnings), r.PlayerName)
	dailyKey := dailyLeaderboard + now.Format("2006-01-02")
	pipe.ZIncrBy(ctx, dailyKey, float64(r.Winnings), r.PlayerName)
	// 设置过期时间（2天）
	pipe.Expire(ctx, dailyKey, 48*time.Hour)
	_, err = pipe.Exec(ctx)
	return err
}

// TopWinners 获取累计赢得筹码排行榜
func (rs *RedisStore) TopWinners(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	return rs.leaderboard(ctx, leaderboardKey, limit)
}

// TopWinnersToday 获取当日排行榜
func (rs *RedisStore) TopWinnersToday(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	return rs.leaderboard(ctx, dailyLeaderboard+time.Now().Format("2006-01-02"), limit)
}

func (rs *RedisStore) leaderboard(ctx context.Context, key string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	// 获取排行榜（从高到低）
	results, err := rs.client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("读取排行榜失败: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		name, ok := result.Member.(string)
		if !ok {
			continue
		}
		entry := LeaderboardEntry{
			Rank:       i + 1,
			PlayerName: name,
			Winnings:   int64(result.Score),
		}
		if stats, err := rs.PlayerStats(ctx, name); err == nil && stats != nil {
			entry.HandsWon = stats.HandsWon
			entry.WinRate = stats.WinRate()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// PlayerRank 获取玩家排名，未上榜返回 -1
func (rs *RedisStore) PlayerRank(ctx context.Context, name string) (int64, error) {
	rank, err := rs.client.ZRevRank(ctx, leaderboardKey, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil // Redis 排名从 0 开始
}
