package power

import (
	"errors"
	"fmt"
	"slices"

	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
)

var (
	// ErrNotReady 输入尚未满足能力要求，调用方应记录已有输入并等待
	ErrNotReady = errors.New("power input incomplete")
	// ErrInvalidSelection 目标或选牌不合法
	ErrInvalidSelection = errors.New("invalid power selection")
)

// Request 执行一次能力所需的全部输入
type Request struct {
	Kind        Kind
	Actor       *player.Player
	Target      *player.Player // 无目标时为 nil
	Cards       []int          // 选中的手牌下标，含义取决于 Kind
	Deck        *card.Deck
	StealAmount int // <=0 时使用 DefaultStealAmount
}

// Outcome 能力执行结果
type Outcome struct {
	Kind      Kind
	Message   string
	Revealed  []card.Card // 钢铁侠看到的手牌
	Discarded []card.Card // 被换下的牌，进入弃牌堆
	Stolen    int
	Blocked   bool
}

// Resolve 执行能力。出错时不修改任何状态
func Resolve(req Request) (Outcome, error) {
	if req.Actor == nil {
		return Outcome{}, fmt.Errorf("resolve %s: %w: no actor", req.Kind, ErrInvalidSelection)
	}
	if !Ready(req.Kind, req.Target != nil, len(req.Cards)) {
		return Outcome{}, fmt.Errorf("resolve %s: %w", req.Kind, ErrNotReady)
	}
	if req.Target != nil && req.Target.ID == req.Actor.ID {
		return Outcome{}, fmt.Errorf("resolve %s: %w: cannot target self", req.Kind, ErrInvalidSelection)
	}

	switch req.Kind {
	case IronMan:
		return resolveIronMan(req), nil
	case CaptainAmerica:
		return resolveCaptainAmerica(req), nil
	case Thor:
		return resolveThor(req)
	case Hulk:
		return resolveHulk(req)
	case SpiderMan:
		return resolveSpiderMan(req), nil
	case DoctorStrange:
		return resolveDoctorStrange(req)
	case Generic:
		name := "their hero"
		if len(req.Actor.Hand) > 0 {
			name = req.Actor.Hand[0].Name
		}
		return Outcome{Kind: Generic, Message: fmt.Sprintf("%s uses %s's power!", req.Actor.Name, name)}, nil
	default:
		return Outcome{}, fmt.Errorf("resolve %s: %w: unknown power", req.Kind, ErrInvalidSelection)
	}
}

func resolveIronMan(req Request) Outcome {
	return Outcome{
		Kind:     IronMan,
		Message:  fmt.Sprintf("%s uses Iron Man's power to see %s's hand!", req.Actor.Name, req.Target.Name),
		Revealed: slices.Clone(req.Target.Hand),
	}
}

func resolveCaptainAmerica(req Request) Outcome {
	req.Target.UsedPower = true
	return Outcome{
		Kind:    CaptainAmerica,
		Message: fmt.Sprintf("%s uses Captain America's power to block %s's power!", req.Actor.Name, req.Target.Name),
		Blocked: true,
	}
}

func resolveThor(req Request) (Outcome, error) {
	idx := req.Cards[0]
	if _, err := req.Target.Card(idx); err != nil {
		return Outcome{}, fmt.Errorf("thor: %w: %w", ErrInvalidSelection, err)
	}
	if req.Deck == nil {
		return Outcome{}, fmt.Errorf("thor: %w", card.ErrInsufficientCards)
	}
	drawn, err := req.Deck.Draw(1)
	if err != nil {
		return Outcome{}, fmt.Errorf("thor: %w", err)
	}
	old, _ := req.Target.Replace(idx, drawn[0])
	return Outcome{
		Kind:      Thor,
		Message:   fmt.Sprintf("%s uses Thor's power to force %s to discard a card!", req.Actor.Name, req.Target.Name),
		Discarded: []card.Card{old},
	}, nil
}

func resolveHulk(req Request) (Outcome, error) {
	seen := make(map[int]bool, len(req.Cards))
	for _, idx := range req.Cards {
		if _, err := req.Actor.Card(idx); err != nil {
			return Outcome{}, fmt.Errorf("hulk: %w: %w", ErrInvalidSelection, err)
		}
		if seen[idx] {
			return Outcome{}, fmt.Errorf("hulk: %w: duplicate index %d", ErrInvalidSelection, idx)
		}
		seen[idx] = true
	}
	if req.Deck == nil {
		return Outcome{}, fmt.Errorf("hulk: %w", card.ErrInsufficientCards)
	}
	drawn, err := req.Deck.Draw(len(req.Cards))
	if err != nil {
		return Outcome{}, fmt.Errorf("hulk: %w", err)
	}

	discarded := make([]card.Card, 0, len(req.Cards))
	for i, idx := range req.Cards {
		old, _ := req.Actor.Replace(idx, drawn[i])
		discarded = append(discarded, old)
	}
	return Outcome{
		Kind:      Hulk,
		Message:   fmt.Sprintf("%s uses Hulk's power to swap %d cards!", req.Actor.Name, len(req.Cards)),
		Discarded: discarded,
	}, nil
}

func resolveSpiderMan(req Request) Outcome {
	amount := req.StealAmount
	if amount <= 0 {
		amount = DefaultStealAmount
	}
	amount = min(amount, req.Target.Chips)
	req.Target.Chips -= amount
	req.Actor.Chips += amount
	return Outcome{
		Kind:    SpiderMan,
		Message: fmt.Sprintf("%s uses Spider-Man's power to steal %d chips from %s!", req.Actor.Name, amount, req.Target.Name),
		Stolen:  amount,
	}
}

func resolveDoctorStrange(req Request) (Outcome, error) {
	mine, theirs := req.Cards[0], req.Cards[1]
	a, err := req.Actor.Card(mine)
	if err != nil {
		return Outcome{}, fmt.Errorf("doctor strange: %w: %w", ErrInvalidSelection, err)
	}
	b, err := req.Target.Card(theirs)
	if err != nil {
		return Outcome{}, fmt.Errorf("doctor strange: %w: %w", ErrInvalidSelection, err)
	}
	req.Actor.Hand[mine] = b
	req.Target.Hand[theirs] = a
	return Outcome{
		Kind:    DoctorStrange,
		Message: fmt.Sprintf("%s uses Doctor Strange's power to swap cards with %s!", req.Actor.Name, req.Target.Name),
	}, nil
}
