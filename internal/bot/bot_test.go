package bot

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

var (
	weakHand   = []int{1, 5, 6, 24, 33}  // 8 6 5 4 10: HIGH POWER
	pairHand   = []int{2, 15, 6, 24, 33} // 7 7: HERO PAIR
	teamUpHand = []int{1, 7, 13, 5, 24}  // 8 8 8: TEAM-UP
	civilWar   = []int{1, 7, 13, 5, 9}   // 8 8 8 6 6: CIVIL WAR
	fourHand   = []int{1, 7, 13, 17, 24} // 8 8 8 8: FANTASTIC FOUR
	filler     = []int{44, 46, 49, 42, 51}
)

func cards(t *testing.T, ids []int) []card.Card {
	t.Helper()
	out := make([]card.Card, len(ids))
	for i, id := range ids {
		c, ok := card.ByID(id)
		require.True(t, ok, "card %d", id)
		out[i] = c
	}
	return out
}

// snapshotFor 1 号位为决策者，其余座位使用填充手牌
func snapshotFor(t *testing.T, phase session.Phase, hand []int) session.Snapshot {
	t.Helper()
	rules := session.DefaultRules()
	players := make([]player.Player, session.NumSeats)
	for i := range players {
		players[i] = player.Player{ID: i + 1, Name: rules.PlayerNames[i], Chips: 480, Hand: cards(t, filler)}
	}
	players[0].Hand = cards(t, hand)
	return session.Snapshot{
		Phase:         phase,
		HandNumber:    1,
		Players:       players,
		CurrentPlayer: 1,
		DeckSize:      32,
		Rules:         rules,
	}
}

func TestDecide_NotMyTurn(t *testing.T) {
	t.Parallel()

	snap := snapshotFor(t, session.PhaseBet1, weakHand)
	assert.Equal(t, Move{}, Decide(snap, 2))

	snap.Phase = session.PhaseShowdown
	assert.Equal(t, Move{}, Decide(snap, 1))

	snap.Phase = session.PhaseBet1
	snap.Players[0].Folded = true
	assert.Equal(t, Move{}, Decide(snap, 1))
}

func TestDecide_Bet(t *testing.T) {
	t.Parallel()

	check := Move{Kind: MoveBet, Action: session.ActionCheck}
	call := Move{Kind: MoveBet, Action: session.ActionCall}
	fold := Move{Kind: MoveBet, Action: session.ActionFold}

	tests := []struct {
		name     string
		hand     []int
		tableBet int
		myBet    int
		chips    int
		want     Move
	}{
		{"weak free check", weakHand, 0, 0, 480, check},
		{"strong opens", teamUpHand, 0, 0, 480, bet(20)},
		{"strong opens short stack", teamUpHand, 0, 0, 5, bet(5)},
		{"strong broke checks", teamUpHand, 0, 0, 0, check},
		{"weak folds to bet", weakHand, 20, 0, 480, fold},
		{"weak calls small bet", weakHand, 10, 0, 480, call},
		{"pair calls affordable bet", pairHand, 20, 0, 480, call},
		{"pair folds big bet", pairHand, 200, 0, 480, fold},
		{"strong calls big bet", teamUpHand, 200, 0, 480, call},
		{"monster raises", fourHand, 20, 0, 480, bet(40)},
		{"monster only calls after acting", fourHand, 30, 10, 480, call},
		{"cannot afford call", teamUpHand, 200, 0, 100, fold},
		{"matched strong raises", teamUpHand, 20, 20, 480, bet(20)},
		{"matched pair stays in", pairHand, 20, 20, 480, call},
		{"matched weak stays in", weakHand, 20, 20, 480, call},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap := snapshotFor(t, session.PhaseBet1, tt.hand)
			snap.TableBet = tt.tableBet
			snap.Players[0].Bet = tt.myBet
			snap.Players[0].Chips = tt.chips
			assert.Equal(t, tt.want, Decide(snap, 1))
		})
	}
}

func TestDecide_Powers(t *testing.T) {
	t.Parallel()

	spider := card.Card{ID: 99, Name: "Spider-Man", Power: 8, Team: card.Avengers}

	tests := []struct {
		name  string
		hand  []int
		setup func(*session.Snapshot)
		want  Move
	}{
		{
			name: "iron man looks at next seat",
			hand: []int{1, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.Players[1].Folded = true
			},
			want: Move{Kind: MoveUsePower, Target: 3},
		},
		{
			name: "captain america blocks chip leader",
			hand: []int{2, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.Players[2].Chips = 600
				s.Players[3].Chips = 700
				s.Players[3].UsedPower = true
			},
			want: Move{Kind: MoveUsePower, Target: 3},
		},
		{
			name: "captain america with nobody to block",
			hand: []int{2, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				for i := 1; i < 4; i++ {
					s.Players[i].UsedPower = true
				}
			},
			want: Move{Kind: MoveSkipPower},
		},
		{
			name: "spider-man robs the richest",
			setup: func(s *session.Snapshot) {
				s.Players[0].Hand[0] = spider
				s.Players[3].Chips = 900
			},
			hand: []int{1, 5, 6, 24, 33},
			want: Move{Kind: MoveUsePower, Target: 4},
		},
		{
			name: "thor hits the richest",
			hand: []int{3, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.Players[1].Chips = 800
			},
			want: Move{Kind: MoveUsePower, Target: 2, Cards: []int{0}},
		},
		{
			name: "thor with empty deck",
			hand: []int{3, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.DeckSize = 0
			},
			want: Move{Kind: MoveSkipPower},
		},
		{
			name: "hulk trades spare cards",
			hand: []int{4, 5, 6, 24, 33},
			want: Move{Kind: MoveUsePower, Cards: []int{3, 2, 1}},
		},
		{
			name: "hulk limited by deck",
			hand: []int{4, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.DeckSize = 2
			},
			want: Move{Kind: MoveUsePower, Cards: []int{3, 2}},
		},
		{
			name: "doctor strange swaps weakest card",
			hand: []int{43, 5, 6, 24, 33},
			want: Move{Kind: MoveUsePower, Target: 2, Cards: []int{3, 0}},
		},
		{
			name: "generic power",
			hand: []int{13, 5, 6, 24, 33},
			want: Move{Kind: MoveUsePower},
		},
		{
			name: "blocked power skips",
			hand: []int{1, 5, 6, 24, 33},
			setup: func(s *session.Snapshot) {
				s.Players[0].UsedPower = true
			},
			want: Move{Kind: MoveSkipPower},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap := snapshotFor(t, session.PhasePowers, tt.hand)
			if tt.setup != nil {
				tt.setup(&snap)
			}
			assert.Equal(t, tt.want, Decide(snap, 1))
		})
	}
}

func TestDecide_Swap(t *testing.T) {
	t.Parallel()

	snap := snapshotFor(t, session.PhaseSwap, civilWar)
	assert.Equal(t, Move{Kind: MoveStandPat}, Decide(snap, 1))

	snap = snapshotFor(t, session.PhaseSwap, weakHand)
	assert.Equal(t, Move{Kind: MoveSwap, Cards: []int{1, 2, 3}}, Decide(snap, 1))

	snap.DeckSize = 1
	assert.Equal(t, Move{Kind: MoveSwap, Cards: []int{3}}, Decide(snap, 1))

	snap.DeckSize = 0
	assert.Equal(t, Move{Kind: MoveStandPat}, Decide(snap, 1))
}

func TestFallback(t *testing.T) {
	t.Parallel()

	snap := snapshotFor(t, session.PhaseBet2, weakHand)
	assert.Equal(t, session.ActionCheck, Fallback(snap, 1).Action)
	snap.TableBet = 20
	assert.Equal(t, session.ActionFold, Fallback(snap, 1).Action)
	snap.Players[0].Bet = 20
	assert.Equal(t, session.ActionCall, Fallback(snap, 1).Action, "matched seat stays in")

	snap.Phase = session.PhasePowers
	assert.Equal(t, MoveSkipPower, Fallback(snap, 1).Kind)
	snap.Phase = session.PhaseSwap
	assert.Equal(t, MoveStandPat, Fallback(snap, 1).Kind)
	snap.Phase = session.PhaseIdle
	assert.Equal(t, MoveNone, Fallback(snap, 1).Kind)
}

type mockGame struct {
	mock.Mock
}

func (m *mockGame) SubmitBet(playerID int, action session.BetAction, amount int) error {
	return m.Called(playerID, action, amount).Error(0)
}

func (m *mockGame) SelectCard(playerID, index int) error {
	return m.Called(playerID, index).Error(0)
}

func (m *mockGame) UsePower(playerID, targetID int) error {
	return m.Called(playerID, targetID).Error(0)
}

func (m *mockGame) SkipPower(playerID int) error { return m.Called(playerID).Error(0) }

func (m *mockGame) ConfirmSwap(playerID int) error { return m.Called(playerID).Error(0) }

func (m *mockGame) StandPat(playerID int) error { return m.Called(playerID).Error(0) }

func TestApply_SelectsBeforeActing(t *testing.T) {
	t.Parallel()

	g := &mockGame{}
	g.On("SelectCard", 2, 3).Return(nil).Once()
	g.On("SelectCard", 2, 0).Return(nil).Once()
	g.On("UsePower", 2, 4).Return(nil).Once()

	require.NoError(t, Apply(g, 2, Move{Kind: MoveUsePower, Target: 4, Cards: []int{3, 0}}))
	g.AssertExpectations(t)
}

func TestApply_StopsOnSelectionError(t *testing.T) {
	t.Parallel()

	g := &mockGame{}
	g.On("SelectCard", 1, 9).Return(assert.AnError).Once()

	err := Apply(g, 1, Move{Kind: MoveSwap, Cards: []int{9}})
	assert.ErrorIs(t, err, assert.AnError)
	g.AssertNotCalled(t, "ConfirmSwap", 1)
}

func TestApply_Kinds(t *testing.T) {
	t.Parallel()

	g := &mockGame{}
	g.On("SubmitBet", 1, session.ActionBet, 20).Return(nil).Once()
	g.On("SkipPower", 1).Return(nil).Once()
	g.On("StandPat", 1).Return(nil).Once()
	g.On("ConfirmSwap", 1).Return(nil).Once()

	require.NoError(t, Apply(g, 1, bet(20)))
	require.NoError(t, Apply(g, 1, Move{Kind: MoveSkipPower}))
	require.NoError(t, Apply(g, 1, Move{Kind: MoveStandPat}))
	require.NoError(t, Apply(g, 1, Move{Kind: MoveSwap}))
	require.NoError(t, Apply(g, 1, Move{}))
	g.AssertExpectations(t)
}

// 四个座位都交给 NPC，每一手都必须走到摊牌且筹码守恒
func TestBots_PlayFullHands(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		s := session.New(session.DefaultRules(), session.WithRand(rand.New(rand.NewPCG(seed, 99))))
		require.NoError(t, s.Deal())

		for step := 0; ; step++ {
			require.Less(t, step, 200, "seed %d did not finish", seed)
			snap := s.Snapshot()
			if snap.Phase == session.PhaseShowdown {
				break
			}
			seat := snap.CurrentPlayer
			if err := Apply(s, seat, Decide(snap, seat)); err != nil {
				require.NoError(t, Apply(s, seat, Fallback(s.Snapshot(), seat)), "seed %d step %d", seed, step)
			}
		}

		snap := s.Snapshot()
		total := snap.Pot
		for _, p := range snap.Players {
			total += p.Chips
		}
		assert.Equal(t, 4*500, total, "seed %d", seed)
		assert.NotEmpty(t, snap.Rankings, "seed %d", seed)
	}
}
