package client

import (
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

const maxLogLines = 8

// GameState holds the latest table view plus what the client derived from events
type GameState struct {
	TableID string
	Seat    int
	View    protocol.TableView
	HasView bool

	// Recent event messages, oldest first
	Log []string

	Tracker *CardTracker
}

// NewGameState creates an empty game state
func NewGameState() *GameState {
	return &GameState{Tracker: NewCardTracker()}
}

// ApplyConnected records the seat and table assigned by the server
func (gs *GameState) ApplyConnected(p protocol.ConnectedPayload) {
	gs.TableID = p.TableID
	gs.Seat = p.SeatID
}

// ApplySnapshot replaces the table view; visible hands count as seen
func (gs *GameState) ApplySnapshot(v protocol.TableView) {
	gs.View = v
	gs.HasView = true
	if gs.Seat == 0 {
		gs.Seat = v.Viewer
	}
	for _, p := range v.Players {
		if p.HandVisible {
			gs.Tracker.See(p.Hand...)
		}
	}
}

// ApplyEvent updates the tracker and log from a game event
func (gs *GameState) ApplyEvent(e protocol.EventPayload) {
	switch e.Type {
	case "deal_started":
		gs.Tracker.Reset()
		gs.Log = nil
	case "hand_dealt", "power_used", "swap_done":
		gs.Tracker.See(e.Cards...)
	}
	if e.Message != "" {
		gs.appendLog(e.Message)
	}
}

func (gs *GameState) appendLog(line string) {
	gs.Log = append(gs.Log, line)
	if len(gs.Log) > maxLogLines {
		gs.Log = gs.Log[len(gs.Log)-maxLogLines:]
	}
}

// Me returns the player's own seat info
func (gs *GameState) Me() (protocol.PlayerInfo, bool) {
	for _, p := range gs.View.Players {
		if p.ID == gs.Seat {
			return p, true
		}
	}
	return protocol.PlayerInfo{}, false
}

// IsMyTurn reports whether the server is waiting on this player
func (gs *GameState) IsMyTurn() bool {
	return gs.HasView && gs.Seat != 0 && gs.View.CurrentPlayer == gs.Seat
}

// IsSelected reports whether the card at index is part of the pending selection
func (gs *GameState) IsSelected(index int) bool {
	for _, i := range gs.View.Selected {
		if i == index {
			return true
		}
	}
	return false
}

// Opponents returns the other seats that have not folded
func (gs *GameState) Opponents() []protocol.PlayerInfo {
	var out []protocol.PlayerInfo
	for _, p := range gs.View.Players {
		if p.ID != gs.Seat && !p.Folded {
			out = append(out, p)
		}
	}
	return out
}
