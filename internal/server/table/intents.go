package table

import "github.com/palemoky/marvel-battle-poker/internal/game/session"

// intent 执行真人玩家的操作，成功后推送快照
func (t *Table) intent(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	t.after()
	return nil
}

// NewGame 开始新一局，instant 为 true 时跳过发牌动画
func (t *Table) NewGame(instant bool) error {
	return t.intent(func() error {
		if instant {
			return t.game.Deal()
		}
		return t.game.StartNewGame()
	})
}

// Bet 下注
func (t *Table) Bet(action session.BetAction, amount int) error {
	return t.intent(func() error { return t.game.SubmitBet(t.seat, action, amount) })
}

// SelectCard 选择/取消选择手牌
func (t *Table) SelectCard(index int) error {
	return t.intent(func() error { return t.game.SelectCard(t.seat, index) })
}

// UsePower 使用能力
func (t *Table) UsePower(targetID int) error {
	return t.intent(func() error { return t.game.UsePower(t.seat, targetID) })
}

// SkipPower 放弃能力
func (t *Table) SkipPower() error {
	return t.intent(func() error { return t.game.SkipPower(t.seat) })
}

// ConfirmSwap 确认换牌
func (t *Table) ConfirmSwap() error {
	return t.intent(func() error { return t.game.ConfirmSwap(t.seat) })
}

// StandPat 不换牌
func (t *Table) StandPat() error {
	return t.intent(func() error { return t.game.StandPat(t.seat) })
}
