package bot

import (
	"fmt"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// Game NPC 可以调用的会话操作
type Game interface {
	SubmitBet(playerID int, action session.BetAction, amount int) error
	SelectCard(playerID, index int) error
	UsePower(playerID, targetID int) error
	SkipPower(playerID int) error
	ConfirmSwap(playerID int) error
	StandPat(playerID int) error
}

var _ Game = (*session.GameSession)(nil)

// Apply 将决策提交给会话，先选牌再执行
func Apply(g Game, seat int, m Move) error {
	for _, idx := range m.Cards {
		if err := g.SelectCard(seat, idx); err != nil {
			return fmt.Errorf("seat %d select %d: %w", seat, idx, err)
		}
	}

	switch m.Kind {
	case MoveBet:
		return g.SubmitBet(seat, m.Action, m.Amount)
	case MoveUsePower:
		return g.UsePower(seat, m.Target)
	case MoveSkipPower:
		return g.SkipPower(seat)
	case MoveSwap:
		return g.ConfirmSwap(seat)
	case MoveStandPat:
		return g.StandPat(seat)
	default:
		return nil
	}
}
