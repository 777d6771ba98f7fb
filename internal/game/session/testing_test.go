package session

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
)

// recorder 记录会话发布的事件
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) HandleEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) ofType(t EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) HandleEvent(e Event) {
	m.Called(e)
}

// baseHands 测试用的固定手牌，每手 0 号位可以替换成想要的角色
var baseHands = map[int][]int{
	1: {1, 5, 6, 24, 33},
	2: {13, 18, 21, 26, 35},
	3: {27, 30, 32, 37, 36},
	4: {44, 46, 49, 42, 51},
}

func newTestSession(t *testing.T, opts ...Option) (*GameSession, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(7, 11))), WithSink(rec)}, opts...)
	s := New(DefaultRules(), opts...)
	require.NoError(t, s.Deal())
	return s, rec
}

// setHands 直接指定四手牌，并用剩余的牌按目录顺序重建牌堆
func setHands(t *testing.T, s *GameSession, hands map[int][]int) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	used := make(map[int]bool)
	for seat := 1; seat <= NumSeats; seat++ {
		ids, ok := hands[seat]
		require.True(t, ok, "seat %d missing", seat)
		require.Len(t, ids, 5)
		cards, err := cardsFromIDs(ids)
		require.NoError(t, err)
		s.players[seat-1].Hand = cards
		for _, id := range ids {
			require.False(t, used[id], "card %d used twice", id)
			used[id] = true
		}
	}
	var rest []card.Card
	for _, c := range card.Catalog() {
		if !used[c.ID] {
			rest = append(rest, c)
		}
	}
	s.deck = card.NewDeckFrom(rest)
	s.discard = nil
}

// withFirst 返回把某个座位 0 号位换成 id 后的手牌
func withFirst(seat, id int) map[int][]int {
	out := make(map[int][]int, len(baseHands))
	for k, v := range baseHands {
		out[k] = slices.Clone(v)
	}
	out[seat][0] = id
	return out
}

func checkAround(t *testing.T, s *GameSession) {
	t.Helper()
	for id := 1; id <= NumSeats; id++ {
		if s.players[id-1].Folded {
			continue
		}
		require.NoError(t, s.SubmitBet(id, ActionCheck, 0))
	}
}

func skipAround(t *testing.T, s *GameSession) {
	t.Helper()
	for id := 1; id <= NumSeats; id++ {
		if s.players[id-1].Folded || s.CurrentPlayer() != id {
			continue
		}
		require.NoError(t, s.SkipPower(id))
	}
}

func standAround(t *testing.T, s *GameSession) {
	t.Helper()
	for id := 1; id <= NumSeats; id++ {
		if s.players[id-1].Folded || s.CurrentPlayer() != id {
			continue
		}
		require.NoError(t, s.StandPat(id))
	}
}

// assertConservation 底池等于本局投入之和，筹码总量不变
func assertConservation(t *testing.T, s *GameSession, total int) {
	t.Helper()
	snap := s.Snapshot()
	chips, committed := 0, 0
	for _, p := range snap.Players {
		assert.GreaterOrEqual(t, p.Chips, 0)
		chips += p.Chips
		committed += p.Committed
	}
	assert.Equal(t, total, chips+snap.Pot, "chip conservation")
	if snap.Phase != PhaseShowdown {
		assert.Equal(t, committed, snap.Pot, "pot equals committed")
	}
}

// assertCardsConserved 牌堆、手牌与弃牌堆合起来正好是整副牌
func assertCardsConserved(t *testing.T, s *GameSession) {
	t.Helper()
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]int)
	for _, c := range s.deck.Cards() {
		seen[c.ID]++
	}
	for _, c := range s.discard {
		seen[c.ID]++
	}
	for _, p := range s.players {
		for _, c := range p.Hand {
			seen[c.ID]++
		}
	}
	assert.Len(t, seen, card.CatalogSize)
	for id, n := range seen {
		assert.Equal(t, 1, n, "card %d", id)
	}
}
