package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

const (
	// Redis key 前缀
	tableKeyPrefix = "table:"

	// 默认牌桌存档过期时间
	defaultTableExpiration = 24 * time.Hour
)

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore 创建 Redis 存储，ttl 为 0 时使用默认过期时间
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTableExpiration
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Dial 连接 Redis 并检查可用性
func Dial(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}
	return NewRedisStore(client, ttl), nil
}

// --- 牌桌存储 ---

// SaveTable 保存牌桌到 Redis
func (rs *RedisStore) SaveTable(ctx context.Context, tableID string, st *session.State) error {
	if st == nil {
		return nil
	}

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("序列化牌桌数据失败: %w", err)
	}
	return rs.client.Set(ctx, tableKeyPrefix+tableID, data, rs.ttl).Err()
}

// LoadTable 从 Redis 加载牌桌
func (rs *RedisStore) LoadTable(ctx context.Context, tableID string) (*session.State, error) {
	data, err := rs.client.Get(ctx, tableKeyPrefix+tableID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 牌桌不存在
		}
		return nil, err
	}

	var st session.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("反序列化牌桌数据失败: %w", err)
	}
	return &st, nil
}

// DeleteTable 从 Redis 删除牌桌
func (rs *RedisStore) DeleteTable(ctx context.Context, tableID string) error {
	return rs.client.Del(ctx, tableKeyPrefix+tableID).Err()
}

// TableIDs 获取所有存档的牌桌 ID
func (rs *RedisStore) TableIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := rs.client.Scan(ctx, 0, tableKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(tableKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Close 关闭 Redis 连接
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
