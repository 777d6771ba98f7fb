package card

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInsufficientCards 牌堆剩余张数不足
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck 定义一副牌，Cards[0] 为牌顶
type Deck struct {
	cards []Card
}

// NewDeck 按目录顺序创建整副牌
func NewDeck() *Deck {
	return &Deck{cards: Catalog()}
}

// NewDeckFrom 用指定顺序的牌创建牌堆（用于恢复存档）
func NewDeckFrom(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle 使用 Fisher–Yates 洗牌，r 为 nil 时使用全局随机源
func (d *Deck) Shuffle(r *rand.Rand) {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if r == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	r.Shuffle(len(d.cards), swap)
}

// Len 剩余张数
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards 返回剩余牌的副本
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Peek 查看牌顶的 n 张牌但不取走
func (d *Deck) Peek(n int) []Card {
	n = min(max(n, 0), len(d.cards))
	out := make([]Card, n)
	copy(out, d.cards[:n])
	return out
}

// Draw 从牌顶取走 n 张牌；张数不足时返回错误且牌堆不变
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw %d cards: %w", n, ErrInsufficientCards)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d cards, %d left: %w", n, len(d.cards), ErrInsufficientCards)
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// DealHands 按座位顺序轮流发牌，返回 numPlayers 手互不相交的牌
func (d *Deck) DealHands(numPlayers, handSize int) ([][]Card, error) {
	if numPlayers <= 0 || handSize <= 0 {
		return nil, fmt.Errorf("deal %dx%d: invalid deal size", numPlayers, handSize)
	}
	need := numPlayers * handSize
	drawn, err := d.Draw(need)
	if err != nil {
		return nil, fmt.Errorf("deal %d hands: %w", numPlayers, err)
	}

	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}
	for i, c := range drawn {
		hands[i%numPlayers] = append(hands[i%numPlayers], c)
	}
	return hands, nil
}
