package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
)

func TestPlayer_Commit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		chips     int
		amount    int
		wantErr   error
		wantChips int
		wantBet   int
	}{
		{"normal bet", 500, 20, nil, 480, 20},
		{"all chips", 30, 30, nil, 0, 30},
		{"zero", 30, 0, nil, 30, 0},
		{"too many", 10, 20, ErrInsufficientFunds, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New(2, "Captain Marvel", tt.chips)
			err := p.Commit(tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChips, p.Chips)
			assert.Equal(t, tt.wantBet, p.Bet)
			assert.Equal(t, tt.wantBet, p.Committed)
		})
	}

	p := New(1, "You", 10)
	assert.Error(t, p.Commit(-1))
}

func TestPlayer_ResetForDeal(t *testing.T) {
	t.Parallel()

	p := New(1, "You", 500)
	require.NoError(t, p.Commit(40))
	p.Hand = card.Catalog()[:5]
	p.UsedPower = true
	p.Folded = true

	p.ResetForDeal()

	assert.Equal(t, 460, p.Chips, "chips carry over")
	assert.Zero(t, p.Bet)
	assert.Zero(t, p.Committed)
	assert.Nil(t, p.Hand)
	assert.False(t, p.UsedPower)
	assert.True(t, p.Active())
	assert.True(t, p.IsHuman())
}

func TestPlayer_Replace(t *testing.T) {
	t.Parallel()

	p := New(3, "Black Panther", 500)
	p.Hand = card.Catalog()[:5]
	fresh, _ := card.ByID(40)

	old, err := p.Replace(2, fresh)
	require.NoError(t, err)
	assert.Equal(t, 3, old.ID)
	assert.Equal(t, 40, p.Hand[2].ID)

	_, err = p.Replace(5, fresh)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = p.Card(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestPlayer_OwesAndClone(t *testing.T) {
	t.Parallel()

	p := New(4, "Star-Lord", 100)
	require.NoError(t, p.Commit(15))
	assert.Equal(t, 5, p.Owes(20))
	assert.Equal(t, 0, p.Owes(10))

	p.Hand = card.Catalog()[:5]
	cp := p.Clone()
	cp.Hand[0] = card.Card{}
	assert.Equal(t, 1, p.Hand[0].ID, "clone must not share hand")
	assert.False(t, p.IsHuman())
}
