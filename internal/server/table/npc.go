package table

import (
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/bot"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// run NPC 协程：被唤醒后一直行动到轮到真人或一手结束
func (t *Table) run() {
	defer close(t.done)
	for {
		select {
		case <-t.ctx.Done():
			return
		case <-t.wake:
		}
		for t.step() {
		}
	}
}

// sleep 等待 d，牌桌关闭时返回 false
func (t *Table) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-t.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// step 执行一步自动操作，没有可做的事时返回 false
func (t *Table) step() bool {
	snap := t.game.Snapshot()

	switch {
	case snap.Phase == session.PhaseDeal:
		if !t.sleep(t.dealDelay) {
			return false
		}
		if err := t.game.CompleteDeal(); err != nil {
			// 等待期间真人重新开局会让这里失败，下一轮再看
			t.log.Debug("complete deal skipped", zap.Error(err))
			return true
		}

	case snap.CurrentPlayer == 0 || snap.CurrentPlayer == t.seat:
		return false

	default:
		seat := snap.CurrentPlayer
		if !t.sleep(t.botDelay) {
			return false
		}
		// 等待期间局面可能已经变化
		snap = t.game.Snapshot()
		if snap.CurrentPlayer != seat {
			return true
		}
		move := bot.Decide(snap, seat)
		if err := bot.Apply(t.game, seat, move); err != nil {
			t.log.Warn("npc move rejected",
				zap.Int("seat", seat),
				zap.Stringer("move", move.Kind),
				zap.Error(err))
			if err := bot.Apply(t.game, seat, bot.Fallback(t.game.Snapshot(), seat)); err != nil {
				t.log.Error("npc fallback rejected", zap.Int("seat", seat), zap.Error(err))
				return false
			}
		}
	}

	t.SendSnapshot()
	t.persist()
	return true
}
