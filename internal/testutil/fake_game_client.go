//go:build !production

package testutil

import (
	"fmt"
	"sync"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// FakeGameClient records the intents a UI sends instead of writing to a socket
type FakeGameClient struct {
	mu       sync.Mutex
	calls    []string
	incoming chan *protocol.Message

	Connected    bool
	Reconnecting bool
	ConnectErr   error
	SendErr      error // 非空时所有动作都返回该错误
}

// NewFakeGameClient 创建已连接的假客户端
func NewFakeGameClient() *FakeGameClient {
	return &FakeGameClient{Connected: true, incoming: make(chan *protocol.Message, 16)}
}

func (f *FakeGameClient) record(format string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return f.SendErr
	}
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

// Calls 返回记录的调用，形如 "bet bet 30"
func (f *FakeGameClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Push 模拟服务器下发一条消息
func (f *FakeGameClient) Push(msg *protocol.Message) { f.incoming <- msg }

func (f *FakeGameClient) Connect() error { return f.ConnectErr }

func (f *FakeGameClient) Receive() (*protocol.Message, error) { return <-f.incoming, nil }

func (f *FakeGameClient) StartHeartbeat() {}

func (f *FakeGameClient) Close() {
	f.mu.Lock()
	f.Connected = false
	f.mu.Unlock()
}

func (f *FakeGameClient) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Connected
}

func (f *FakeGameClient) IsReconnecting() bool { return f.Reconnecting }
func (f *FakeGameClient) GetLatency() int64    { return 12 }

func (f *FakeGameClient) NewGame(instant bool) error { return f.record("new_game %t", instant) }
func (f *FakeGameClient) Bet(action string, amount int) error {
	return f.record("bet %s %d", action, amount)
}
func (f *FakeGameClient) Check() error                { return f.Bet("check", 0) }
func (f *FakeGameClient) Call() error                 { return f.Bet("call", 0) }
func (f *FakeGameClient) Fold() error                 { return f.Bet("fold", 0) }
func (f *FakeGameClient) SelectCard(index int) error  { return f.record("select_card %d", index) }
func (f *FakeGameClient) UsePower(targetID int) error { return f.record("use_power %d", targetID) }
func (f *FakeGameClient) SkipPower() error            { return f.record("skip_power") }
func (f *FakeGameClient) ConfirmSwap() error          { return f.record("confirm_swap") }
func (f *FakeGameClient) StandPat() error             { return f.record("stand_pat") }
func (f *FakeGameClient) GetLeaderboard(kind string, limit int) error {
	return f.record("get_leaderboard %s %d", kind, limit)
}
func (f *FakeGameClient) GetStats() error { return f.record("get_stats") }
