package model

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// KeyMap holds every binding of the table screen.
type KeyMap struct {
	NewGame     key.Binding
	DealSlow    key.Binding
	Check       key.Binding
	Call        key.Binding
	Bet         key.Binding
	Fold        key.Binding
	SelectCard  key.Binding
	NextTarget  key.Binding
	UsePower    key.Binding
	SkipPower   key.Binding
	ConfirmSwap key.Binding
	StandPat    key.Binding
	Tracker     key.Binding
	Leaderboard key.Binding
	Daily       key.Binding
	Stats       key.Binding
	Rules       key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewGame:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new hand")),
		DealSlow:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new hand (animated)")),
		Check:       key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "check")),
		Call:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "call")),
		Bet:         key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bet")),
		Fold:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fold")),
		SelectCard:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "select card")),
		NextTarget:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next target")),
		UsePower:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "use power")),
		SkipPower:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "skip power")),
		ConfirmSwap: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "swap selected")),
		StandPat:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stand pat")),
		Tracker:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "card tracker")),
		Leaderboard: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leaderboard")),
		Daily:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "daily/total")),
		Stats:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "my stats")),
		Rules:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rules")),
		Help:        key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.Help, k.Tracker, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewGame, k.DealSlow, k.Check, k.Call, k.Bet, k.Fold},
		{k.SelectCard, k.NextTarget, k.UsePower, k.SkipPower, k.ConfirmSwap, k.StandPat},
		{k.Tracker, k.Leaderboard, k.Daily, k.Stats, k.Rules, k.Help, k.Back, k.Quit},
	}
}

// SetPhase enables only the bindings that make sense in a table phase.
// Check needs an open table; call stays available once anyone has bet,
// even when the viewer has already matched.
func (k *KeyMap) SetPhase(name string, myTurn bool, tableBet int) {
	phase, err := session.ParsePhase(name)
	if err != nil || !myTurn {
		phase = session.PhaseIdle
	}
	betting := phase.IsBetting()
	powers := phase == session.PhasePowers
	swap := phase == session.PhaseSwap

	k.Check.SetEnabled(betting && tableBet == 0)
	k.Call.SetEnabled(betting && tableBet > 0)
	k.Bet.SetEnabled(betting)
	k.Fold.SetEnabled(betting)
	k.SelectCard.SetEnabled(powers || swap)
	k.NextTarget.SetEnabled(powers)
	k.UsePower.SetEnabled(powers)
	k.SkipPower.SetEnabled(powers)
	k.ConfirmSwap.SetEnabled(swap)
	k.StandPat.SetEnabled(swap)
}
