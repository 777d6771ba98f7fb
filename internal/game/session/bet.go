package session

import (
	"fmt"

	"github.com/palemoky/marvel-battle-poker/internal/apperrors"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
)

// SubmitBet 处理下注阶段的 check/bet/call/fold
func (s *GameSession) SubmitBet(playerID int, action BetAction, amount int) error {
	return s.do("bet", playerID, func() error {
		p, err := s.actor(playerID, PhaseBet1, PhaseBet2)
		if err != nil {
			return err
		}

		switch action {
		case ActionCheck:
			if s.tableBet > 0 {
				return apperrors.ErrCannotCheck
			}
			s.message = fmt.Sprintf("%s checks", p.Name)
			amount = 0

		case ActionBet:
			if amount <= 0 {
				return apperrors.ErrInvalidAmount
			}
			if err := p.Commit(amount); err != nil {
				return mapError(err)
			}
			s.pot += amount
			s.tableBet = max(s.tableBet, p.Bet)
			s.message = fmt.Sprintf("%s bets %d chips", p.Name, amount)

		case ActionCall:
			if s.tableBet == 0 {
				return apperrors.ErrNothingToCall
			}
			// 已经跟平时跟注 0 筹码，表示继续留在本轮
			amount = p.Owes(s.tableBet)
			if amount == 0 {
				s.message = fmt.Sprintf("%s stays in", p.Name)
				break
			}
			if err := p.Commit(amount); err != nil {
				return mapError(err)
			}
			s.pot += amount
			s.message = fmt.Sprintf("%s calls %d chips", p.Name, amount)

		case ActionFold:
			p.Folded = true
			amount = 0
			s.message = fmt.Sprintf("%s folds", p.Name)

		default:
			return apperrors.ErrInvalidAction
		}

		s.acted[p.ID-1] = true
		s.emit(Event{Type: EventBetPlaced, PlayerID: p.ID, Action: action, Amount: amount, Message: s.message})
		s.advanceBetting()
		return nil
	})
}

// advanceBetting 每次下注后决定：直接获胜、结束本轮或轮到下一位
func (s *GameSession) advanceBetting() {
	active := s.activePlayers()
	if len(active) == 1 {
		s.winByFold(active[0])
		return
	}

	if s.bettingClosed(active) {
		s.emit(Event{Type: EventBettingClosed, Amount: s.tableBet, Message: fmt.Sprintf("Betting closed at %d", s.tableBet)})
		if s.phase == PhaseBet2 {
			s.showdown()
			return
		}
		s.resetBets()
		s.setPhase(PhasePowers)
		s.setTurn(s.firstActive())
		s.message = "Hero Power phase - use your character's special ability!"
		return
	}

	s.setTurn(s.nextActive(s.current))
}

// bettingClosed 所有未弃牌玩家下注额相同，且有人下注或所有人都已表态
func (s *GameSession) bettingClosed(active []*player.Player) bool {
	allActed := true
	for _, p := range active {
		if p.Bet != s.tableBet {
			return false
		}
		if !s.acted[p.ID-1] {
			allActed = false
		}
	}
	return s.tableBet > 0 || allActed
}

func (s *GameSession) resetBets() {
	for _, p := range s.players {
		p.Bet = 0
	}
	s.tableBet = 0
	s.acted = [NumSeats]bool{}
}
