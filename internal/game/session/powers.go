package session

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/apperrors"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/power"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
)

// powerKind 玩家的能力由 0 号位手牌的角色决定
func powerKind(p *player.Player) power.Kind {
	if len(p.Hand) == 0 {
		return power.Generic
	}
	return power.KindOf(p.Hand[0].Name)
}

// SelectCard 在能力/换牌阶段切换选中的手牌下标
func (s *GameSession) SelectCard(playerID, index int) error {
	return s.do("select_card", playerID, func() error {
		p, err := s.actor(playerID, PhasePowers, PhaseSwap)
		if err != nil {
			return err
		}
		if index < 0 || index >= rule.HandSize {
			return apperrors.ErrInvalidCardIndex
		}

		limit := s.rules.MaxSwapCards
		appendOnly := false
		if s.phase == PhasePowers {
			if p.UsedPower {
				return apperrors.ErrPowerUsed
			}
			kind := powerKind(p)
			need := power.Requirement(kind)
			limit = need.MaxCards
			if limit < 0 {
				limit = rule.HandSize
			}
			// 奇异博士第二张牌指向对手的手牌，下标可以与第一张相同
			appendOnly = kind == power.DoctorStrange && len(s.pending.selected) == 1
		}

		sel := s.pending.selected
		if i := slices.Index(sel, index); i >= 0 && !appendOnly {
			s.pending.selected = slices.Delete(slices.Clone(sel), i, i+1)
			return nil
		}
		if len(sel) >= limit {
			return apperrors.ErrSelectionFull
		}
		s.pending.selected = append(slices.Clone(sel), index)
		return nil
	})
}

// UsePower 使用能力。targetID 为 0 表示未指定目标；输入不足时记录并等待
func (s *GameSession) UsePower(playerID, targetID int) error {
	return s.do("use_power", playerID, func() error {
		p, err := s.actor(playerID, PhasePowers)
		if err != nil {
			return err
		}
		if p.UsedPower {
			return apperrors.ErrPowerUsed
		}

		kind := powerKind(p)
		need := power.Requirement(kind)

		target := s.pending.target
		if need.Target && targetID != 0 {
			t, err := s.seat(targetID)
			if err != nil || t.ID == p.ID || t.Folded {
				return apperrors.ErrInvalidTarget
			}
			target = targetID
		}

		req := power.Request{
			Kind:        kind,
			Actor:       p,
			Cards:       slices.Clone(s.pending.selected),
			Deck:        s.deck,
			StealAmount: s.rules.StealAmount,
		}
		if need.Target && target != 0 {
			req.Target = s.players[target-1]
		}

		out, err := power.Resolve(req)
		switch {
		case errors.Is(err, power.ErrNotReady):
			s.pending.target = target
			s.message = power.Instruction(kind, target != 0)
			return nil
		case errors.Is(err, power.ErrInvalidSelection):
			return apperrors.ErrInvalidCardIndex
		case err != nil:
			return mapError(err)
		}

		p.UsedPower = true
		s.discard = append(s.discard, out.Discarded...)
		if kind == power.IronMan {
			s.revealed[p.ID] = append(s.revealed[p.ID], target)
		}
		s.message = out.Message
		s.log.Debug("power used",
			zap.Int("hand", s.handNumber),
			zap.Int("player", p.ID),
			zap.Stringer("kind", kind),
			zap.Int("target", target))
		s.emit(Event{
			Type:     EventPowerUsed,
			PlayerID: p.ID,
			TargetID: target,
			Amount:   out.Stolen,
			Message:  out.Message,
			Cards:    out.Revealed,
		})
		s.advanceTurn()
		return nil
	})
}

// SkipPower 放弃本局能力
func (s *GameSession) SkipPower(playerID int) error {
	return s.do("skip_power", playerID, func() error {
		p, err := s.actor(playerID, PhasePowers)
		if err != nil {
			return err
		}
		p.UsedPower = true
		s.message = fmt.Sprintf("%s skips using their power", p.Name)
		s.advanceTurn()
		return nil
	})
}

// advanceTurn 能力/换牌阶段轮到下一位，越过最后一个座位则进入下一阶段
func (s *GameSession) advanceTurn() {
	for id := s.current + 1; id <= NumSeats; id++ {
		if s.players[id-1].Active() {
			s.setTurn(id)
			return
		}
	}

	switch s.phase {
	case PhasePowers:
		s.setPhase(PhaseSwap)
		s.message = fmt.Sprintf("Card swap phase - select up to %d cards to discard", s.rules.MaxSwapCards)
	case PhaseSwap:
		s.resetBets()
		s.setPhase(PhaseBet2)
		s.message = "Final betting round!"
	}
	s.setTurn(s.firstActive())
}
