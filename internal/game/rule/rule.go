package rule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
)

// HandSize 一手牌的张数
const HandSize = 5

// ErrInvalidHand 手牌张数不正确
var ErrInvalidHand = errors.New("hand must contain exactly 5 cards")

// Category 定义牌型，数值即牌型等级（1..9）
type Category int

const (
	Invalid          Category = iota
	HighPower                 // 高能
	HeroPair                  // 英雄对
	DynamicDuo                // 双人组
	TeamUp                    // 三人组
	CivilWar                  // 内战（三带二）
	FantasticFour             // 神奇四侠（四张同能量）
	PowerFive                 // 能量五连
	SuperTeam                 // 超级战队（同阵营）
	InfinityGauntlet          // 无限手套（反派五张不同能量）
)

// categoryNames 牌型名称映射表
var categoryNames = map[Category]string{
	HighPower:        "HIGH POWER",
	HeroPair:         "HERO PAIR",
	DynamicDuo:       "DYNAMIC DUO",
	TeamUp:           "TEAM-UP",
	CivilWar:         "CIVIL WAR",
	FantasticFour:    "FANTASTIC FOUR",
	PowerFive:        "POWER FIVE",
	SuperTeam:        "SUPER TEAM",
	InfinityGauntlet: "INFINITY GAUNTLET",
}

// categoryRules 牌型说明，客户端帮助页使用
var categoryRules = map[Category]string{
	HighPower:        "None of the combinations below",
	HeroPair:         "Two cards with the same power",
	DynamicDuo:       "Two different pairs of matching power",
	TeamUp:           "Three cards with the same power",
	CivilWar:         "Three of one power plus two of another",
	FantasticFour:    "Four cards with the same power",
	PowerFive:        "Five consecutive power levels",
	SuperTeam:        "All five cards from the same team",
	InfinityGauntlet: "Five different powers, all Villains",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "INVALID"
}

// Rank 返回牌型等级
func (c Category) Rank() int {
	return int(c)
}

// Categories 返回所有有效牌型，从高到低
func Categories() []Category {
	return []Category{
		InfinityGauntlet, SuperTeam, PowerFive, FantasticFour, CivilWar,
		TeamUp, DynamicDuo, HeroPair, HighPower,
	}
}

// Describe 返回牌型规则说明
func Describe(c Category) string {
	return categoryRules[c]
}

// Result 一手牌的评估结果
type Result struct {
	Rank     Category
	Category string
}

// HandAnalysis 对一手牌进行预分析，统计能量与阵营的分布
type HandAnalysis struct {
	powerCounts map[int]int       // 每种能量值的张数
	teamCounts  map[card.Team]int // 每个阵营的张数
	// 为了方便，提前将不同数量的能量值分组
	fours []int
	trios []int
	pairs []int
	ones  []int
}

// analyzeCards 分析手牌，返回一个包含所有统计信息的结构
func analyzeCards(cards []card.Card) HandAnalysis {
	analysis := HandAnalysis{
		powerCounts: make(map[int]int),
		teamCounts:  make(map[card.Team]int),
	}
	for _, c := range cards {
		analysis.powerCounts[c.Power]++
		analysis.teamCounts[c.Team]++
	}

	for p, count := range analysis.powerCounts {
		switch count {
		case 4:
			analysis.fours = append(analysis.fours, p)
		case 3:
			analysis.trios = append(analysis.trios, p)
		case 2:
			analysis.pairs = append(analysis.pairs, p)
		case 1:
			analysis.ones = append(analysis.ones, p)
		}
	}
	slices.Sort(analysis.fours)
	slices.Sort(analysis.trios)
	slices.Sort(analysis.pairs)
	slices.Sort(analysis.ones)
	return analysis
}

// distinctPowers 返回排好序的不同能量值
func (a HandAnalysis) distinctPowers() []int {
	powers := make([]int, 0, len(a.powerCounts))
	for p := range a.powerCounts {
		powers = append(powers, p)
	}
	slices.Sort(powers)
	return powers
}

func (a HandAnalysis) isInfinityGauntlet() bool {
	return len(a.powerCounts) == HandSize && a.teamCounts[card.Villains] == HandSize
}

func (a HandAnalysis) isSuperTeam() bool {
	for _, count := range a.teamCounts {
		if count == HandSize {
			return true
		}
	}
	return false
}

func (a HandAnalysis) isPowerFive() bool {
	powers := a.distinctPowers()
	return len(powers) == HandSize && powers[HandSize-1]-powers[0] == HandSize-1
}

func (a HandAnalysis) isCivilWar() bool {
	return len(a.powerCounts) == 2 && len(a.trios) == 1 && len(a.pairs) == 1
}

// Evaluate 评估一手 5 张牌，按等级从高到低匹配，先命中者为准
func Evaluate(hand []card.Card) (Result, error) {
	if len(hand) != HandSize {
		return Result{}, fmt.Errorf("evaluate %d cards: %w", len(hand), ErrInvalidHand)
	}

	c := classify(analyzeCards(hand))
	return Result{Rank: c, Category: c.String()}, nil
}

func classify(a HandAnalysis) Category {
	switch {
	case a.isInfinityGauntlet():
		return InfinityGauntlet
	case a.isSuperTeam():
		return SuperTeam
	case a.isPowerFive():
		return PowerFive
	case len(a.fours) > 0:
		return FantasticFour
	case a.isCivilWar():
		return CivilWar
	case len(a.trios) > 0:
		return TeamUp
	case len(a.pairs) == 2:
		return DynamicDuo
	case len(a.pairs) > 0:
		return HeroPair
	default:
		return HighPower
	}
}

// Contributing 返回构成牌型的牌在手牌中的下标（HIGH POWER 时为能量最高的一张）
// 机器人换牌时用来决定保留哪些牌
func Contributing(hand []card.Card) []int {
	a := analyzeCards(hand)
	keep := make(map[int]bool)

	switch classify(a) {
	case InfinityGauntlet, SuperTeam, PowerFive:
		for i := range hand {
			keep[i] = true
		}
		return sortedKeys(keep)
	}

	grouped := slices.Concat(a.fours, a.trios, a.pairs)
	for i, c := range hand {
		if slices.Contains(grouped, c.Power) {
			keep[i] = true
		}
	}
	if len(keep) == 0 && len(hand) > 0 {
		best := 0
		for i, c := range hand {
			if c.Power > hand[best].Power {
				best = i
			}
		}
		keep[best] = true
	}
	return sortedKeys(keep)
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
