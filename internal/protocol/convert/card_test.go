package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

func TestCardRoundTrip(t *testing.T) {
	t.Parallel()

	original, ok := card.ByID(1)
	require.True(t, ok)

	info := CardToInfo(original)
	assert.Equal(t, "Iron Man", info.Name)
	assert.Equal(t, "Avengers", info.Team)

	assert.Equal(t, original, InfoToCard(info))
}

func TestCardsRoundTrip(t *testing.T) {
	t.Parallel()

	originals := card.Catalog()[:5]

	infos := CardsToInfos(originals)
	results := InfosToCards(infos)

	require.Len(t, results, len(originals))
	for i, orig := range originals {
		assert.Equal(t, orig, results[i], "Mismatch at index %d", i)
	}
}

func TestInfoToCard_OffCatalog(t *testing.T) {
	t.Parallel()

	info := protocol.CardInfo{ID: 99, Name: "Spider-Man", Power: 8, Team: "Avengers"}
	c := InfoToCard(info)
	assert.Equal(t, card.Card{ID: 99, Name: "Spider-Man", Power: 8, Team: card.Avengers}, c)
}

func TestEmptyCards(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CardsToInfos([]card.Card{}))
	assert.Empty(t, InfosToCards([]protocol.CardInfo{}))
}
