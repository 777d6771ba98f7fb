// Package bot 为 NPC 座位做决策，只使用公开信息和自己的手牌
package bot

import (
	"cmp"
	"slices"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/power"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

// MoveKind 决策种类
type MoveKind int

const (
	MoveNone MoveKind = iota // 不是该座位的回合
	MoveBet
	MoveUsePower
	MoveSkipPower
	MoveSwap
	MoveStandPat
)

func (k MoveKind) String() string {
	switch k {
	case MoveBet:
		return "bet"
	case MoveUsePower:
		return "use_power"
	case MoveSkipPower:
		return "skip_power"
	case MoveSwap:
		return "swap"
	case MoveStandPat:
		return "stand_pat"
	default:
		return "none"
	}
}

// Move represents the decision made by the NPC.
type Move struct {
	Kind   MoveKind
	Action session.BetAction // MoveBet
	Amount int               // MoveBet 且 Action 为 bet
	Target int               // MoveUsePower，0 表示无目标
	Cards  []int             // 执行前依次选中的手牌下标
}

// Decide 使用默认参数决策
func Decide(snap session.Snapshot, seat int) Move {
	return DefaultTuning.Decide(snap, seat)
}

// Decide 根据快照为 seat 做出决策
func (t Tuning) Decide(snap session.Snapshot, seat int) Move {
	if snap.CurrentPlayer != seat {
		return Move{}
	}
	me, ok := snap.Player(seat)
	if !ok || me.Folded {
		return Move{}
	}

	switch snap.Phase {
	case session.PhaseBet1, session.PhaseBet2:
		return t.decideBet(snap, me)
	case session.PhasePowers:
		return t.decidePower(snap, me)
	case session.PhaseSwap:
		return t.decideSwap(snap, me)
	default:
		return Move{}
	}
}

// strength 当前手牌的牌型等级，手牌不完整时为 0
func strength(hand []card.Card) int {
	res, err := rule.Evaluate(hand)
	if err != nil {
		return 0
	}
	return res.Rank.Rank()
}

func bet(amount int) Move {
	return Move{Kind: MoveBet, Action: session.ActionBet, Amount: amount}
}

func (t Tuning) decideBet(snap session.Snapshot, me player.Player) Move {
	rank := strength(me.Hand)
	owe := snap.ToCall(me.ID)
	fold := Move{Kind: MoveBet, Action: session.ActionFold}

	if owe == 0 {
		if snap.TableBet == 0 {
			if rank >= t.StrongRank && me.Chips > 0 {
				return bet(min(t.RaiseAmount, me.Chips))
			}
			return Move{Kind: MoveBet, Action: session.ActionCheck}
		}
		// 已经跟平但仍有人下注不足，跟注 0 筹码留在本轮
		if me.Chips > 0 && rank >= t.StrongRank {
			return bet(min(t.RaiseAmount, me.Chips))
		}
		return Move{Kind: MoveBet, Action: session.ActionCall}
	}

	if owe > me.Chips {
		return fold
	}

	call := Move{Kind: MoveBet, Action: session.ActionCall}
	switch {
	case rank >= t.RaiseRank && me.Bet == 0 && me.Chips >= owe+t.RaiseAmount:
		return bet(owe + t.RaiseAmount)
	case rank >= t.StrongRank:
		return call
	case rank >= t.MediumRank && float64(owe) <= float64(me.Chips)*t.CallFraction:
		return call
	case owe <= t.LooseCall:
		return call
	default:
		return fold
	}
}

// opponents 未弃牌的其他座位，按座位号排序
func opponents(snap session.Snapshot, seat int) []player.Player {
	var out []player.Player
	for _, p := range snap.Players {
		if p.ID != seat && !p.Folded {
			out = append(out, p)
		}
	}
	return out
}

// richest 筹码最多的座位，平局取座位号小的
func richest(ps []player.Player) (player.Player, bool) {
	if len(ps) == 0 {
		return player.Player{}, false
	}
	return slices.MaxFunc(ps, func(a, b player.Player) int {
		if c := cmp.Compare(a.Chips, b.Chips); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	}), true
}

// nextSeat 从 seat 之后顺时针找到的第一个对手
func nextSeat(ps []player.Player, seat int) (player.Player, bool) {
	if len(ps) == 0 {
		return player.Player{}, false
	}
	for _, p := range ps {
		if p.ID > seat {
			return p, true
		}
	}
	return ps[0], true
}

// spare 不构成牌型的手牌下标，能量低的在前
func spare(hand []card.Card) []int {
	keep := rule.Contributing(hand)
	var out []int
	for i := range hand {
		if !slices.Contains(keep, i) {
			out = append(out, i)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(hand[a].Power, hand[b].Power)
	})
	return out
}

func (t Tuning) decidePower(snap session.Snapshot, me player.Player) Move {
	skip := Move{Kind: MoveSkipPower}
	if me.UsedPower || len(me.Hand) == 0 {
		return skip
	}

	opps := opponents(snap, me.ID)
	use := func(target int, cards ...int) Move {
		return Move{Kind: MoveUsePower, Target: target, Cards: cards}
	}

	switch kind := snap.PowerKind(me.ID); kind {
	case power.IronMan:
		if p, ok := nextSeat(opps, me.ID); ok {
			return use(p.ID)
		}
	case power.CaptainAmerica:
		// 只封锁还没用过能力的对手
		fresh := slices.DeleteFunc(slices.Clone(opps), func(p player.Player) bool { return p.UsedPower })
		if p, ok := richest(fresh); ok {
			return use(p.ID)
		}
	case power.SpiderMan:
		if p, ok := richest(opps); ok && p.Chips > 0 {
			return use(p.ID)
		}
	case power.Thor:
		if p, ok := richest(opps); ok && snap.DeckSize > 0 {
			return use(p.ID, 0)
		}
	case power.Hulk:
		cards := spare(me.Hand)
		if len(cards) > snap.DeckSize {
			cards = cards[:snap.DeckSize]
		}
		if len(cards) > 0 {
			return use(0, cards...)
		}
	case power.DoctorStrange:
		cards := spare(me.Hand)
		if p, ok := nextSeat(opps, me.ID); ok && len(cards) > 0 {
			return use(p.ID, cards[0], 0)
		}
	default:
		return use(0)
	}
	return skip
}

func (t Tuning) decideSwap(snap session.Snapshot, me player.Player) Move {
	if strength(me.Hand) >= t.StandPatRank {
		return Move{Kind: MoveStandPat}
	}
	cards := spare(me.Hand)
	limit := min(snap.Rules.MaxSwapCards, snap.DeckSize)
	if len(cards) > limit {
		cards = cards[:limit]
	}
	if len(cards) == 0 {
		return Move{Kind: MoveStandPat}
	}
	slices.Sort(cards)
	return Move{Kind: MoveSwap, Cards: cards}
}

// Fallback 决策被会话拒绝时的保底动作，总是合法
func Fallback(snap session.Snapshot, seat int) Move {
	switch snap.Phase {
	case session.PhaseBet1, session.PhaseBet2:
		switch {
		case snap.TableBet == 0:
			return Move{Kind: MoveBet, Action: session.ActionCheck}
		case snap.ToCall(seat) == 0:
			return Move{Kind: MoveBet, Action: session.ActionCall}
		default:
			return Move{Kind: MoveBet, Action: session.ActionFold}
		}
	case session.PhasePowers:
		return Move{Kind: MoveSkipPower}
	case session.PhaseSwap:
		return Move{Kind: MoveStandPat}
	default:
		return Move{}
	}
}
