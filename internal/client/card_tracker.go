package client

import (
	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// CardTracker tracks which catalog cards the player has not seen this hand
type CardTracker struct {
	seen map[int]bool
}

// NewCardTracker creates a tracker with every card unseen
func NewCardTracker() *CardTracker {
	return &CardTracker{seen: make(map[int]bool, card.CatalogSize)}
}

// Reset marks every card unseen again, called when a new hand is dealt
func (ct *CardTracker) Reset() {
	clear(ct.seen)
}

// See marks cards as seen; unknown IDs are ignored
func (ct *CardTracker) See(cards ...protocol.CardInfo) {
	for _, c := range cards {
		if _, ok := card.ByID(c.ID); ok {
			ct.seen[c.ID] = true
		}
	}
}

// SeenCount returns how many distinct cards have been seen
func (ct *CardTracker) SeenCount() int {
	return len(ct.seen)
}

// Remaining returns the number of unseen cards for each power value
func (ct *CardTracker) Remaining() map[int]int {
	remaining := make(map[int]int, card.MaxPower-card.MinPower+1)
	for p := card.MinPower; p <= card.MaxPower; p++ {
		remaining[p] = 0
	}
	for _, c := range card.Catalog() {
		if !ct.seen[c.ID] {
			remaining[c.Power]++
		}
	}
	return remaining
}

// RemainingByTeam returns the number of unseen cards for each team name
func (ct *CardTracker) RemainingByTeam() map[string]int {
	remaining := make(map[string]int, len(card.Teams()))
	for _, t := range card.Teams() {
		remaining[t.String()] = 0
	}
	for _, c := range card.Catalog() {
		if !ct.seen[c.ID] {
			remaining[c.Team.String()]++
		}
	}
	return remaining
}
