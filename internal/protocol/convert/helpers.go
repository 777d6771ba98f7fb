package convert

import (
	"fmt"
	"slices"

	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/power"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// --- Ranking conversion ---

func RankingToInfo(r session.Ranking) protocol.RankingInfo {
	return protocol.RankingInfo{
		PlayerID: r.PlayerID,
		Name:     r.Name,
		Rank:     r.Rank,
		Category: r.Category,
		Winner:   r.Winner,
		Winnings: r.Winnings,
	}
}

func RankingsToInfos(rs []session.Ranking) []protocol.RankingInfo {
	if len(rs) == 0 {
		return nil
	}
	result := make([]protocol.RankingInfo, len(rs))
	for i, r := range rs {
		result[i] = RankingToInfo(r)
	}
	return result
}

// --- PlayerInfo conversion ---

// PlayerToInfo 转换座位信息，visible 为 false 时隐藏手牌内容
func PlayerToInfo(p player.Player, visible bool) protocol.PlayerInfo {
	info := protocol.PlayerInfo{
		ID:          p.ID,
		Name:        p.Name,
		Chips:       p.Chips,
		Bet:         p.Bet,
		Committed:   p.Committed,
		Folded:      p.Folded,
		UsedPower:   p.UsedPower,
		IsHuman:     p.IsHuman(),
		CardsCount:  len(p.Hand),
		HandVisible: visible,
	}
	if visible && len(p.Hand) > 0 {
		info.Hand = CardsToInfos(p.Hand)
		kind := power.KindOf(p.Hand[0].Name)
		info.Power = kind.String()
		info.PowerSummary = power.Description(kind, p.Hand[0].Name)
	}
	return info
}

// --- TableView ---

// ViewFor 生成 viewer 视角的牌桌，viewer 看不到的手牌一律隐藏
func ViewFor(snap session.Snapshot, viewer int) protocol.TableView {
	players := make([]protocol.PlayerInfo, len(snap.Players))
	for i, p := range snap.Players {
		players[i] = PlayerToInfo(p, snap.CanSee(viewer, p.ID))
	}

	view := protocol.TableView{
		Viewer:        viewer,
		Phase:         snap.Phase.String(),
		HandNumber:    snap.HandNumber,
		Pot:           snap.Pot,
		TableBet:      snap.TableBet,
		ToCall:        snap.ToCall(viewer),
		CurrentPlayer: snap.CurrentPlayer,
		Message:       snap.Message,
		Players:       players,
		DeckSize:      snap.DeckSize,
		MaxSwapCards:  snap.Rules.MaxSwapCards,
		Rankings:      RankingsToInfos(snap.Rankings),
	}

	// 选牌和目标只属于当前行动者
	if snap.CurrentPlayer == viewer {
		view.Selected = slices.Clone(snap.Selected)
		view.PendingTarget = snap.PendingTarget
		view.Instruction = instruction(snap, viewer)
	}
	return view
}

func instruction(snap session.Snapshot, viewer int) string {
	switch snap.Phase {
	case session.PhasePowers:
		return power.Instruction(snap.PowerKind(viewer), snap.PendingTarget != 0)
	case session.PhaseSwap:
		return fmt.Sprintf("Select up to %d cards to discard", snap.Rules.MaxSwapCards)
	case session.PhaseBet1, session.PhaseBet2:
		if owe := snap.ToCall(viewer); owe > 0 {
			return fmt.Sprintf("Call %d chips, raise or fold", owe)
		}
		if snap.TableBet > 0 {
			return "Call to stay in, raise or fold"
		}
		return "Check or bet"
	default:
		return ""
	}
}

// --- Event conversion ---

// EventFor 将会话事件转换为 viewer 可见的事件
// 返回 false 表示该事件不应发给 viewer
func EventFor(e session.Event, viewer int) (protocol.EventPayload, bool) {
	payload := protocol.EventPayload{
		Type:       string(e.Type),
		HandNumber: e.HandNumber,
		Phase:      e.Phase.String(),
		PlayerID:   e.PlayerID,
		TargetID:   e.TargetID,
		Amount:     e.Amount,
		Action:     string(e.Action),
		Message:    e.Message,
		Rankings:   RankingsToInfos(e.Rankings),
	}

	switch e.Type {
	case session.EventHandDealt:
		if e.PlayerID != viewer {
			return protocol.EventPayload{}, false
		}
		payload.Cards = CardsToInfos(e.Cards)
	case session.EventDealStarted:
		// 只告知发牌数量，不泄露牌堆顺序
		payload.Amount = len(e.Cards)
	case session.EventPowerUsed:
		if e.PlayerID == viewer {
			payload.Cards = CardsToInfos(e.Cards)
		}
	default:
		payload.Cards = CardsToInfos(e.Cards)
	}
	return payload, true
}
