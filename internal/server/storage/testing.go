//go:build !production

package storage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// MockStore Store 的 mock 实现
type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) SaveTable(ctx context.Context, tableID string, st *session.State) error {
	return m.Called(ctx, tableID, st).Error(0)
}

func (m *MockStore) LoadTable(ctx context.Context, tableID string) (*session.State, error) {
	args := m.Called(ctx, tableID)
	st, _ := args.Get(0).(*session.State)
	return st, args.Error(1)
}

func (m *MockStore) DeleteTable(ctx context.Context, tableID string) error {
	return m.Called(ctx, tableID).Error(0)
}

func (m *MockStore) RecordResult(ctx context.Context, r HandResult) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockStore) TopWinners(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]LeaderboardEntry)
	return entries, args.Error(1)
}

func (m *MockStore) TopWinnersToday(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]LeaderboardEntry)
	return entries, args.Error(1)
}

func (m *MockStore) PlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	args := m.Called(ctx, name)
	stats, _ := args.Get(0).(*PlayerStats)
	return stats, args.Error(1)
}

func (m *MockStore) PlayerRank(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}
