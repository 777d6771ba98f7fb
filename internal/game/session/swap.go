package session

import (
	"fmt"

	"github.com/palemoky/marvel-battle-poker/internal/apperrors"
)

// ConfirmSwap 用牌堆顶的新牌替换选中的手牌
func (s *GameSession) ConfirmSwap(playerID int) error {
	return s.do("confirm_swap", playerID, func() error {
		p, err := s.actor(playerID, PhaseSwap)
		if err != nil {
			return err
		}
		sel := s.pending.selected
		if len(sel) == 0 {
			return apperrors.ErrNoSelection
		}

		drawn, err := s.deck.Draw(len(sel))
		if err != nil {
			return mapError(err)
		}
		for i, idx := range sel {
			old, _ := p.Replace(idx, drawn[i])
			s.discard = append(s.discard, old)
		}

		s.message = fmt.Sprintf("%s swapped %d cards", p.Name, len(sel))
		s.emit(Event{Type: EventSwapDone, PlayerID: p.ID, Amount: len(sel), Message: s.message})
		s.advanceTurn()
		return nil
	})
}

// StandPat 不换牌，直接轮到下一位
func (s *GameSession) StandPat(playerID int) error {
	return s.do("stand_pat", playerID, func() error {
		p, err := s.actor(playerID, PhaseSwap)
		if err != nil {
			return err
		}
		s.message = fmt.Sprintf("%s keeps their hand", p.Name)
		s.emit(Event{Type: EventSwapDone, PlayerID: p.ID, Message: s.message})
		s.advanceTurn()
		return nil
	})
}
