package player

import (
	"errors"
	"fmt"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
)

// HumanID 真人玩家固定坐 1 号位，其余座位为 NPC
const HumanID = 1

var (
	// ErrInsufficientFunds 筹码不足
	ErrInsufficientFunds = errors.New("insufficient chips")
	// ErrInvalidIndex 手牌下标越界
	ErrInvalidIndex = errors.New("card index out of range")
)

// Player 牌桌上的一个座位
type Player struct {
	ID        int
	Name      string
	Chips     int         // 剩余筹码
	Bet       int         // 本轮下注额，每轮下注开始时清零
	Committed int         // 本局已投入底池的筹码
	Hand      []card.Card // 手牌，发牌后恒为 5 张
	UsedPower bool        // 本局是否已使用（或被封锁）能力
	Folded    bool        // 是否已弃牌
}

// New 创建玩家
func New(id int, name string, chips int) *Player {
	return &Player{ID: id, Name: name, Chips: chips}
}

// IsHuman 是否为真人座位
func (p *Player) IsHuman() bool {
	return p.ID == HumanID
}

// Active 未弃牌的玩家仍在本局中
func (p *Player) Active() bool {
	return !p.Folded
}

// ResetForDeal 新一局开始时重置状态，筹码保留
func (p *Player) ResetForDeal() {
	p.Bet = 0
	p.Committed = 0
	p.Hand = nil
	p.UsedPower = false
	p.Folded = false
}

// Commit 从筹码中拿出 amount 放入本轮下注；筹码不足时不做任何修改
func (p *Player) Commit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("commit %d: negative amount", amount)
	}
	if amount > p.Chips {
		return fmt.Errorf("commit %d with %d chips: %w", amount, p.Chips, ErrInsufficientFunds)
	}
	p.Chips -= amount
	p.Bet += amount
	p.Committed += amount
	return nil
}

// Owes 跟注还需要补的筹码
func (p *Player) Owes(tableBet int) int {
	return max(tableBet-p.Bet, 0)
}

// Award 赢得筹码
func (p *Player) Award(amount int) {
	p.Chips += amount
}

// Card 返回指定下标的手牌
func (p *Player) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(p.Hand) {
		return card.Card{}, fmt.Errorf("index %d of %d: %w", index, len(p.Hand), ErrInvalidIndex)
	}
	return p.Hand[index], nil
}

// Replace 替换指定下标的手牌，返回被换掉的牌
func (p *Player) Replace(index int, c card.Card) (card.Card, error) {
	old, err := p.Card(index)
	if err != nil {
		return card.Card{}, err
	}
	p.Hand[index] = c
	return old, nil
}

// Clone 深拷贝，快照使用
func (p *Player) Clone() Player {
	cp := *p
	cp.Hand = append([]card.Card(nil), p.Hand...)
	return cp
}
