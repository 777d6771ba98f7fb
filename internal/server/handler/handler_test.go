package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
	"github.com/palemoky/marvel-battle-poker/internal/server/table"
	"github.com/palemoky/marvel-battle-poker/internal/testutil"
)

func newTestHandler(t *testing.T, store storage.Store, maintenance bool) *Handler {
	t.Helper()
	srv := new(testutil.MockServer)
	srv.On("IsMaintenanceMode").Return(maintenance).Maybe()
	// NPC 停顿足够长，测试期间只有真人行动
	return NewHandler(HandlerDeps{
		Server: srv,
		Store:  store,
		Table:  table.Options{BotDelay: time.Hour},
	})
}

func newClient(id string) *testutil.SimpleClient {
	return &testutil.SimpleClient{ID: id, Name: "Tony"}
}

func errorCode(t *testing.T, c *testutil.SimpleClient) int {
	t.Helper()
	msg := c.Last(protocol.MsgError)
	require.NotNil(t, msg, "expected an error message")
	p, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	return p.Code
}

func lastView(t *testing.T, c *testutil.SimpleClient) protocol.TableView {
	t.Helper()
	msg := c.Last(protocol.MsgSnapshot)
	require.NotNil(t, msg, "expected a snapshot")
	v, err := protocol.ParsePayload[protocol.TableView](msg)
	require.NoError(t, err)
	return *v
}

func openTable(t *testing.T, h *Handler, c *testutil.SimpleClient) *table.Table {
	t.Helper()
	tb := h.OpenTable(c, "")
	t.Cleanup(func() { h.CloseTable(c.GetID()) })
	return tb
}

func TestHandler_UnknownMessage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, false)
	c := newClient("c1")
	h.Handle(c, &protocol.Message{Type: "play_cards"})
	assert.Equal(t, protocol.ErrCodeInvalidMsg, errorCode(t, c))
}

func TestHandler_Ping(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, false)
	c := newClient("c1")
	h.Handle(c, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 42}))

	msg := c.Last(protocol.MsgPong)
	require.NotNil(t, msg)
	pong, err := protocol.ParsePayload[protocol.PongPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, int64(42), pong.ClientTimestamp)
	assert.Positive(t, pong.ServerTimestamp)
}

func TestHandler_IntentWithoutTable(t *testing.T) {
	t.Parallel()

	types := []protocol.MessageType{
		protocol.MsgSkipPower, protocol.MsgConfirmSwap, protocol.MsgStandPat,
	}
	h := newTestHandler(t, nil, false)
	for _, typ := range types {
		c := newClient("lonely")
		h.Handle(c, &protocol.Message{Type: typ})
		assert.Equal(t, protocol.ErrCodeNoTable, errorCode(t, c), "type %s", typ)
	}
}

func TestHandler_OpenAndCloseTable(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, false)
	c := newClient("c1")
	tb := h.OpenTable(c, "")

	assert.Same(t, tb, h.GetTable("c1"))
	assert.Equal(t, 1, h.TableCount())
	assert.Zero(t, h.ActiveHands())

	msgs := c.Messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, protocol.MsgConnected, msgs[0].Type)
	connected, err := protocol.ParsePayload[protocol.ConnectedPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, "c1", connected.ClientID)
	assert.Equal(t, tb.ID(), connected.TableID)
	assert.Equal(t, 1, connected.SeatID)
	assert.Equal(t, "Tony", connected.PlayerName)
	assert.False(t, connected.Restored)

	view := lastView(t, c)
	assert.Equal(t, "idle", view.Phase)
	assert.Equal(t, "Tony", view.Players[0].Name)

	h.CloseTable("c1")
	assert.Nil(t, h.GetTable("c1"))
	assert.Zero(t, h.TableCount())
	h.CloseTable("c1")
}

func TestHandler_OpenTableRestoreMiss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"no save", nil},
		{"load error", errors.New("redis down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := &storage.MockStore{}
			store.On("LoadTable", mock.Anything, "old-table").Return(nil, tt.err)

			h := newTestHandler(t, store, false)
			c := newClient("c1")
			tb := h.OpenTable(c, "old-table")
			t.Cleanup(func() { h.CloseTable("c1") })

			// 恢复失败的牌桌换用新 ID，不会覆盖原来的存档
			assert.NotEqual(t, "old-table", tb.ID())
			assert.NotEmpty(t, tb.ID())
			connected, err := protocol.ParsePayload[protocol.ConnectedPayload](c.Messages()[0])
			require.NoError(t, err)
			assert.False(t, connected.Restored)
			assert.Equal(t, tb.ID(), connected.TableID)
			store.AssertExpectations(t)
		})
	}
}

func TestHandler_OpenTableTakesOverLiveTable(t *testing.T) {
	t.Parallel()

	s := session.New(session.DefaultRules())
	require.NoError(t, s.Deal())
	st := s.Export()

	store := &storage.MockStore{}
	store.On("LoadTable", mock.Anything, "t-1").Return(&st, nil)
	store.On("SaveTable", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	h := newTestHandler(t, store, false)
	first, second := newClient("c1"), newClient("c2")
	old := h.OpenTable(first, "t-1")
	require.Equal(t, "t-1", old.ID())

	tb := h.OpenTable(second, "t-1")
	t.Cleanup(func() { h.CloseTable("c2") })

	assert.Equal(t, "t-1", tb.ID())
	assert.Nil(t, h.GetTable("c1"), "previous connection no longer drives the table")
	assert.Same(t, tb, h.GetTable("c2"))
	assert.Equal(t, 1, h.TableCount())

	connected, err := protocol.ParsePayload[protocol.ConnectedPayload](second.Messages()[0])
	require.NoError(t, err)
	assert.True(t, connected.Restored)
	assert.Equal(t, "bet1", lastView(t, second).Phase)
}

func TestHandler_NewGameAndBet(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, false)
	c := newClient("c1")
	openTable(t, h, c)

	h.Handle(c, protocol.MustNewMessage(protocol.MsgNewGame, protocol.NewGamePayload{Instant: true}))
	assert.Equal(t, 1, h.ActiveHands())
	view := lastView(t, c)
	require.Equal(t, "bet1", view.Phase)
	require.Equal(t, 1, view.CurrentPlayer)
	assert.Len(t, view.Players[0].Hand, 5)
	assert.Equal(t, "Check or bet", view.Instruction)

	tests := []struct {
		name    string
		payload protocol.BetPayload
		code    int
	}{
		{"unknown action", protocol.BetPayload{Action: "raise"}, protocol.ErrCodeInvalidAction},
		{"nothing to call", protocol.BetPayload{Action: "call"}, protocol.ErrCodeNothingToCall},
		{"zero bet", protocol.BetPayload{Action: "bet"}, protocol.ErrCodeInvalidAmount},
		{"too many chips", protocol.BetPayload{Action: "bet", Amount: 10_000}, protocol.ErrCodeInsufficientFunds},
	}
	for _, tt := range tests {
		c.Reset()
		h.Handle(c, protocol.MustNewMessage(protocol.MsgBet, tt.payload))
		assert.Equal(t, tt.code, errorCode(t, c), tt.name)
	}

	c.Reset()
	h.Handle(c, protocol.MustNewMessage(protocol.MsgBet, protocol.BetPayload{Action: "bet", Amount: 20}))
	assert.Nil(t, c.Last(protocol.MsgError))
	view = lastView(t, c)
	assert.Equal(t, 20, view.Pot)
	assert.Equal(t, 2, view.CurrentPlayer)

	c.Reset()
	h.Handle(c, &protocol.Message{Type: protocol.MsgStandPat})
	assert.Equal(t, protocol.ErrCodeWrongPhase, errorCode(t, c))
}

func TestHandler_InvalidPayload(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, false)
	c := newClient("c1")
	openTable(t, h, c)

	for _, typ := range []protocol.MessageType{protocol.MsgNewGame, protocol.MsgBet, protocol.MsgSelectCard, protocol.MsgUsePower} {
		c.Reset()
		h.Handle(c, &protocol.Message{Type: typ, Payload: []byte(`{"broken"`)})
		assert.Equal(t, protocol.ErrCodeInvalidMsg, errorCode(t, c), "type %s", typ)
	}
}

func TestHandler_NewGameDuringMaintenance(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, true)
	c := newClient("c1")
	openTable(t, h, c)

	h.Handle(c, protocol.MustNewMessage(protocol.MsgNewGame, protocol.NewGamePayload{Instant: true}))
	assert.Equal(t, protocol.ErrCodeServerMaintenance, errorCode(t, c))
	assert.Equal(t, "idle", lastView(t, c).Phase)
}

func TestHandler_GetLeaderboard(t *testing.T) {
	t.Parallel()

	entries := []storage.LeaderboardEntry{
		{Rank: 1, PlayerName: "Tony", Winnings: 180, HandsWon: 2, WinRate: 100},
		{Rank: 2, PlayerName: "Natasha", Winnings: 40, HandsWon: 1, WinRate: 50},
	}
	store := &storage.MockStore{}
	store.On("TopWinners", mock.Anything, 10).Return(entries, nil)
	store.On("TopWinnersToday", mock.Anything, 5).Return(entries[:1], nil)

	h := newTestHandler(t, store, false)

	tests := []struct {
		name    string
		payload protocol.GetLeaderboardPayload
		typ     string
		want    int
	}{
		{"default limit", protocol.GetLeaderboardPayload{}, "total", 2},
		{"limit clamped", protocol.GetLeaderboardPayload{Type: "total", Limit: 500}, "total", 2},
		{"daily", protocol.GetLeaderboardPayload{Type: "daily", Limit: 5}, "daily", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient("c1")
			h.Handle(c, protocol.MustNewMessage(protocol.MsgGetLeaderboard, tt.payload))
			msg := c.Last(protocol.MsgLeaderboardResult)
			require.NotNil(t, msg)
			res, err := protocol.ParsePayload[protocol.LeaderboardResultPayload](msg)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, res.Type)
			require.Len(t, res.Entries, tt.want)
			assert.Equal(t, "Tony", res.Entries[0].PlayerName)
			assert.Equal(t, int64(180), res.Entries[0].Winnings)
			assert.InDelta(t, 100.0, res.Entries[0].WinRate, 0.001)
		})
	}
}

func TestHandler_GetLeaderboardStoreError(t *testing.T) {
	t.Parallel()

	store := &storage.MockStore{}
	store.On("TopWinners", mock.Anything, 10).Return(nil, errors.New("redis down"))

	h := newTestHandler(t, store, false)
	c := newClient("c1")
	h.Handle(c, &protocol.Message{Type: protocol.MsgGetLeaderboard})
	assert.Equal(t, protocol.ErrCodeStoreFailed, errorCode(t, c))
}

func TestHandler_GetStats(t *testing.T) {
	t.Parallel()

	store := &storage.MockStore{}
	store.On("PlayerStats", mock.Anything, "Tony").Return(&storage.PlayerStats{
		PlayerName:    "Tony",
		HandsPlayed:   4,
		HandsWon:      1,
		TotalWinnings: 90,
		BiggestPot:    90,
		CurrentStreak: -3,
		MaxWinStreak:  1,
	}, nil)
	store.On("PlayerRank", mock.Anything, "Tony").Return(int64(3), nil)
	store.On("PlayerStats", mock.Anything, "Nobody").Return(nil, nil)

	h := newTestHandler(t, store, false)

	c := newClient("c1")
	h.Handle(c, &protocol.Message{Type: protocol.MsgGetStats})
	res, err := protocol.ParsePayload[protocol.StatsResultPayload](c.Last(protocol.MsgStatsResult))
	require.NoError(t, err)
	assert.Equal(t, 4, res.HandsPlayed)
	assert.InDelta(t, 25.0, res.WinRate, 0.001)
	assert.Equal(t, -3, res.CurrentStreak)
	assert.Equal(t, 3, res.Rank)

	nobody := &testutil.SimpleClient{ID: "c2", Name: "Nobody"}
	h.Handle(nobody, &protocol.Message{Type: protocol.MsgGetStats})
	res, err = protocol.ParsePayload[protocol.StatsResultPayload](nobody.Last(protocol.MsgStatsResult))
	require.NoError(t, err)
	assert.Equal(t, "Nobody", res.PlayerName)
	assert.Zero(t, res.HandsPlayed)
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tony", sanitizeName("  Tony "))
	assert.Empty(t, sanitizeName("   "))
	assert.Len(t, []rune(sanitizeName("ThisNameIsWayTooLongForTheTable")), maxNameLength)
}

func TestHandler_ClosedTableStopsNPCs(t *testing.T) {
	t.Parallel()

	h := NewHandler(HandlerDeps{Table: table.Options{BotDelay: time.Millisecond}})
	c := newClient("c1")
	tb := h.OpenTable(c, "")
	require.NoError(t, tb.NewGame(true))
	require.NoError(t, tb.Bet("check", 0))

	done := make(chan struct{})
	go func() {
		h.CloseTable("c1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("CloseTable did not stop the table")
	}
	assert.Nil(t, h.GetTable("c1"))
}
