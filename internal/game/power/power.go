// Package power 实现角色能力：每个能力有自己的目标/选牌要求与效果
package power

import "fmt"

// Kind 能力种类，由手牌 0 号位角色决定
type Kind int

const (
	Generic        Kind = iota // 无特殊效果的角色
	IronMan                    // 查看目标手牌
	CaptainAmerica             // 封锁目标能力
	Thor                       // 强制目标换掉一张牌
	Hulk                       // 与牌堆交换自己的牌
	SpiderMan                  // 偷取目标筹码
	DoctorStrange              // 与目标交换一张牌
)

// DefaultStealAmount 蜘蛛侠每次最多偷取的筹码
const DefaultStealAmount = 10

// kindNames 角色名到能力的映射表，其余角色均为 Generic
var kindNames = map[string]Kind{
	"Iron Man":        IronMan,
	"Captain America": CaptainAmerica,
	"Thor":            Thor,
	"Hulk":            Hulk,
	"Spider-Man":      SpiderMan,
	"Doctor Strange":  DoctorStrange,
}

// KindOf 根据角色名返回能力种类
func KindOf(name string) Kind {
	if k, ok := kindNames[name]; ok {
		return k
	}
	return Generic
}

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case IronMan:
		return "iron-man"
	case CaptainAmerica:
		return "captain-america"
	case Thor:
		return "thor"
	case Hulk:
		return "hulk"
	case SpiderMan:
		return "spider-man"
	case DoctorStrange:
		return "doctor-strange"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Need 能力执行前需要的输入
type Need struct {
	Target   bool // 是否需要选择目标玩家
	MinCards int  // 最少选牌数
	MaxCards int  // 最多选牌数，-1 表示不限
}

// Requirement 返回能力的输入要求
func Requirement(k Kind) Need {
	switch k {
	case IronMan, CaptainAmerica, SpiderMan:
		return Need{Target: true}
	case Thor:
		return Need{Target: true, MinCards: 1, MaxCards: 1}
	case Hulk:
		return Need{MinCards: 1, MaxCards: -1}
	case DoctorStrange:
		return Need{Target: true, MinCards: 2, MaxCards: 2}
	default:
		return Need{}
	}
}

// Ready 输入是否已满足能力要求
func Ready(k Kind, hasTarget bool, selected int) bool {
	n := Requirement(k)
	if n.Target && !hasTarget {
		return false
	}
	if selected < n.MinCards {
		return false
	}
	return n.MaxCards < 0 || selected <= n.MaxCards
}

// Description 能力说明
func Description(k Kind, character string) string {
	switch k {
	case IronMan:
		return "Look at another player's hand"
	case CaptainAmerica:
		return "Block another player's power"
	case Thor:
		return "Force a player to discard a card (select their card)"
	case Hulk:
		return "Trade cards with the deck (select cards to swap)"
	case SpiderMan:
		return "Steal 10 chips from another player"
	case DoctorStrange:
		return "Swap a card with any player (select your card, then theirs)"
	default:
		return fmt.Sprintf("Use %s's special power", character)
	}
}

// Instruction 提示玩家下一步需要提供的输入
func Instruction(k Kind, hasTarget bool) string {
	switch k {
	case IronMan, CaptainAmerica, SpiderMan:
		return "Select a player to target"
	case Thor:
		if !hasTarget {
			return "Select a player to target"
		}
		return "Select a card to discard"
	case Hulk:
		return "Select cards to swap with the deck"
	case DoctorStrange:
		if !hasTarget {
			return "Select your card, then select a player"
		}
		return "Select opponent's card to swap"
	default:
		return "Use your power"
	}
}
