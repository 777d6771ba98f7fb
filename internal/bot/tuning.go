package bot

import "github.com/palemoky/marvel-battle-poker/internal/game/rule"

// Tuning NPC 策略参数，牌型以等级表示
type Tuning struct {
	StrongRank   int     // 达到该等级主动下注并跟任意注
	RaiseRank    int     // 达到该等级在本轮首次行动时加注
	MediumRank   int     // 达到该等级按比例跟注
	StandPatRank int     // 达到该等级不换牌
	CallFraction float64 // 中等牌愿意跟注的筹码比例
	LooseCall    int     // 弱牌也愿意跟的小额下注
	RaiseAmount  int
}

// DefaultTuning 默认 NPC 参数
var DefaultTuning = Tuning{
	StrongRank:   rule.TeamUp.Rank(),
	RaiseRank:    rule.FantasticFour.Rank(),
	MediumRank:   rule.HeroPair.Rank(),
	StandPatRank: rule.CivilWar.Rank(),
	CallFraction: 0.25,
	LooseCall:    10,
	RaiseAmount:  20,
}
