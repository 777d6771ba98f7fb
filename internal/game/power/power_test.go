package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
)

func seat(id int, name string, chips int, ids ...int) *player.Player {
	p := player.New(id, name, chips)
	for _, cid := range ids {
		c, ok := card.ByID(cid)
		if !ok {
			panic("unknown card")
		}
		p.Hand = append(p.Hand, c)
	}
	return p
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Kind
	}{
		{"Iron Man", IronMan},
		{"Captain America", CaptainAmerica},
		{"Thor", Thor},
		{"Hulk", Hulk},
		{"Spider-Man", SpiderMan},
		{"Doctor Strange", DoctorStrange},
		{"Wolverine", Generic},
		{"Thanos", Generic},
		{"", Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.name))
		})
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		target   bool
		selected int
		want     bool
	}{
		{IronMan, false, 0, false},
		{IronMan, true, 0, true},
		{Thor, true, 0, false},
		{Thor, true, 1, true},
		{Thor, true, 2, false},
		{Hulk, false, 0, false},
		{Hulk, false, 4, true},
		{DoctorStrange, true, 1, false},
		{DoctorStrange, false, 2, false},
		{DoctorStrange, true, 2, true},
		{Generic, false, 0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ready(tt.kind, tt.target, tt.selected), "%s target=%v cards=%d", tt.kind, tt.target, tt.selected)
	}
}

func TestTexts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Look at another player's hand", Description(IronMan, "Iron Man"))
	assert.Equal(t, "Use Wolverine's special power", Description(Generic, "Wolverine"))
	assert.Equal(t, "Select a player to target", Instruction(Thor, false))
	assert.Equal(t, "Select a card to discard", Instruction(Thor, true))
	assert.Equal(t, "Select opponent's card to swap", Instruction(DoctorStrange, true))
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestResolve_IronMan(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 1, 2, 3, 4, 5)
	target := seat(2, "Captain Marvel", 500, 6, 7, 8, 9, 10)

	out, err := Resolve(Request{Kind: IronMan, Actor: actor, Target: target})
	require.NoError(t, err)
	assert.Equal(t, target.Hand, out.Revealed)
	assert.Contains(t, out.Message, "Captain Marvel's hand")

	out.Revealed[0] = card.Card{}
	assert.Equal(t, 6, target.Hand[0].ID, "revealed cards are a copy")
}

func TestResolve_CaptainAmerica(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 2, 1, 3, 4, 5)
	target := seat(3, "Black Panther", 500, 6, 7, 8, 9, 10)

	out, err := Resolve(Request{Kind: CaptainAmerica, Actor: actor, Target: target})
	require.NoError(t, err)
	assert.True(t, out.Blocked)
	assert.True(t, target.UsedPower)
}

func TestResolve_Thor(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 3, 1, 2, 4, 5)
	target := seat(2, "Captain Marvel", 500, 6, 7, 8, 9, 10)
	deck := card.NewDeckFrom(card.Catalog()[20:30])

	out, err := Resolve(Request{Kind: Thor, Actor: actor, Target: target, Cards: []int{2}, Deck: deck})
	require.NoError(t, err)
	assert.Equal(t, 21, target.Hand[2].ID)
	require.Len(t, out.Discarded, 1)
	assert.Equal(t, 8, out.Discarded[0].ID)
	assert.Equal(t, 9, deck.Len())
}

func TestResolve_Hulk(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 4, 1, 2, 3, 5)
	deck := card.NewDeckFrom(card.Catalog()[20:30])

	out, err := Resolve(Request{Kind: Hulk, Actor: actor, Cards: []int{1, 3}, Deck: deck})
	require.NoError(t, err)
	assert.Equal(t, 21, actor.Hand[1].ID)
	assert.Equal(t, 22, actor.Hand[3].ID)
	assert.Len(t, out.Discarded, 2)
	assert.Equal(t, 8, deck.Len())
}

func TestResolve_HulkDeckExhaustedLeavesHand(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 4, 1, 2, 3, 5)
	before := append([]card.Card(nil), actor.Hand...)
	deck := card.NewDeckFrom(card.Catalog()[20:21])

	_, err := Resolve(Request{Kind: Hulk, Actor: actor, Cards: []int{0, 1, 2}, Deck: deck})
	require.ErrorIs(t, err, card.ErrInsufficientCards)
	assert.Equal(t, before, actor.Hand)
	assert.Equal(t, 1, deck.Len())
}

func TestResolve_SpiderMan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		targetChips int
		steal       int
		want        int
	}{
		{"default amount", 500, 0, 10},
		{"target short", 4, 0, 4},
		{"custom amount", 500, 25, 25},
		{"broke target", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			actor := seat(1, "You", 100)
			target := seat(4, "Star-Lord", tt.targetChips)

			out, err := Resolve(Request{Kind: SpiderMan, Actor: actor, Target: target, StealAmount: tt.steal})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Stolen)
			assert.Equal(t, 100+tt.want, actor.Chips)
			assert.Equal(t, tt.targetChips-tt.want, target.Chips)
		})
	}
}

func TestResolve_DoctorStrange(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 1, 2, 3, 4, 5)
	target := seat(2, "Captain Marvel", 500, 6, 7, 8, 9, 10)

	_, err := Resolve(Request{Kind: DoctorStrange, Actor: actor, Target: target, Cards: []int{4, 0}})
	require.NoError(t, err)
	assert.Equal(t, 6, actor.Hand[4].ID)
	assert.Equal(t, 5, target.Hand[0].ID)
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	actor := seat(1, "You", 500, 1, 2, 3, 4, 5)
	target := seat(2, "Captain Marvel", 500, 6, 7, 8, 9, 10)

	_, err := Resolve(Request{Kind: IronMan, Actor: actor})
	require.ErrorIs(t, err, ErrNotReady)

	_, err = Resolve(Request{Kind: Thor, Actor: actor, Target: target})
	require.ErrorIs(t, err, ErrNotReady)

	_, err = Resolve(Request{Kind: Thor, Actor: actor, Target: target, Cards: []int{7}, Deck: card.NewDeck()})
	require.ErrorIs(t, err, ErrInvalidSelection)

	_, err = Resolve(Request{Kind: SpiderMan, Actor: actor, Target: actor})
	require.ErrorIs(t, err, ErrInvalidSelection)

	_, err = Resolve(Request{Kind: Hulk, Actor: actor, Cards: []int{1, 1}, Deck: card.NewDeck()})
	require.ErrorIs(t, err, ErrInvalidSelection)

	_, err = Resolve(Request{Kind: DoctorStrange, Actor: actor, Target: target, Cards: []int{0, 9}})
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Equal(t, 1, actor.Hand[0].ID)

	out, err := Resolve(Request{Kind: Generic, Actor: actor})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "You uses")
}
