package session

import (
	"fmt"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/power"
)

// NumSeats 牌桌座位数，1 号位为真人
const NumSeats = 4

// Phase 一局牌的阶段
type Phase int

const (
	PhaseIdle     Phase = iota // 尚未开局
	PhaseDeal                  // 洗牌完成，等待发牌动画结束
	PhaseBet1                  // 第一轮下注
	PhasePowers                // 英雄能力
	PhaseSwap                  // 换牌
	PhaseBet2                  // 第二轮下注
	PhaseShowdown              // 摊牌，等待新一局
)

var phaseNames = map[Phase]string{
	PhaseIdle:     "idle",
	PhaseDeal:     "deal",
	PhaseBet1:     "bet1",
	PhasePowers:   "powers",
	PhaseSwap:     "swap",
	PhaseBet2:     "bet2",
	PhaseShowdown: "showdown",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// IsBetting 是否为下注阶段
func (p Phase) IsBetting() bool {
	return p == PhaseBet1 || p == PhaseBet2
}

// ParsePhase 由名称解析阶段
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return PhaseIdle, fmt.Errorf("unknown phase %q", s)
}

// BetAction 下注动作
type BetAction string

const (
	ActionCheck BetAction = "check"
	ActionBet   BetAction = "bet"
	ActionCall  BetAction = "call"
	ActionFold  BetAction = "fold"
)

// Rules 牌桌参数
type Rules struct {
	StartingChips int
	StealAmount   int
	MaxSwapCards  int
	PlayerNames   [NumSeats]string
}

// DefaultRules 返回默认牌桌参数
func DefaultRules() Rules {
	return Rules{
		StartingChips: 500,
		StealAmount:   power.DefaultStealAmount,
		MaxSwapCards:  3,
		PlayerNames:   [NumSeats]string{"You", "Captain Marvel", "Black Panther", "Star-Lord"},
	}
}

// normalize 用默认值补齐未设置的参数
func (r Rules) normalize() Rules {
	def := DefaultRules()
	if r.StartingChips <= 0 {
		r.StartingChips = def.StartingChips
	}
	if r.StealAmount <= 0 {
		r.StealAmount = def.StealAmount
	}
	if r.MaxSwapCards <= 0 {
		r.MaxSwapCards = def.MaxSwapCards
	}
	for i, name := range r.PlayerNames {
		if name == "" {
			r.PlayerNames[i] = def.PlayerNames[i]
		}
	}
	return r
}

// EventType 事件类型
type EventType string

const (
	EventDealStarted      EventType = "deal_started"
	EventHandDealt        EventType = "hand_dealt"
	EventBetPlaced        EventType = "bet_placed"
	EventBettingClosed    EventType = "betting_closed"
	EventPowerUsed        EventType = "power_used"
	EventSwapDone         EventType = "swap_done"
	EventRoundWon         EventType = "round_won"
	EventShowdownComplete EventType = "showdown_complete"
)

// Event 会话在一次操作中产生的通知，表现层据此播放音效和动画
type Event struct {
	Type       EventType
	HandNumber int
	Phase      Phase
	PlayerID   int
	TargetID   int
	Amount     int
	Action     BetAction
	Message    string
	Cards      []card.Card
	Rankings   []Ranking
}

// EventSink 接收会话事件，在会话锁释放后被调用
type EventSink interface {
	HandleEvent(Event)
}

// EventSinkFunc 函数形式的 EventSink
type EventSinkFunc func(Event)

func (f EventSinkFunc) HandleEvent(e Event) { f(e) }

// Ranking 摊牌排名中的一项
type Ranking struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Rank     int    `json:"rank"`     // 牌型等级，弃牌获胜时为 0
	Category string `json:"category"` // 牌型名称，弃牌获胜时为空
	Winner   bool   `json:"winner"`
	Winnings int    `json:"winnings"`
}

// pending 当前行动玩家尚未完成的输入，换人或换阶段时清空
type pending struct {
	selected []int
	target   int
}
