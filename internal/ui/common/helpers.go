// Package common provides shared utilities for the UI.
package common

import (
	"fmt"
	"strings"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// CardLabel is the two-line face of a card: name on top, power and team below.
func CardLabel(c protocol.CardInfo) string {
	return fmt.Sprintf("%s\n%d %s", TruncateName(c.Name, 14), c.Power, c.Team)
}

// CardList joins card names for log lines and showdown summaries.
func CardList(cards []protocol.CardInfo) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = fmt.Sprintf("%s(%d)", c.Name, c.Power)
	}
	return strings.Join(names, ", ")
}

// HandPower sums the power of a hand.
func HandPower(cards []protocol.CardInfo) int {
	total := 0
	for _, c := range cards {
		total += c.Power
	}
	return total
}
