// Package session 实现一局 Marvel Battle Poker 的阶段与回合状态机
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/apperrors"
	"github.com/palemoky/marvel-battle-poker/internal/game/card"
	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/rule"
)

// Option 会话可选项
type Option func(*GameSession)

// WithRand 指定洗牌随机源，测试时用固定种子
func WithRand(r *rand.Rand) Option {
	return func(s *GameSession) { s.rng = r }
}

// WithLogger 指定日志
func WithLogger(l *zap.Logger) Option {
	return func(s *GameSession) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSink 指定事件接收方
func WithSink(sink EventSink) Option {
	return func(s *GameSession) { s.sink = sink }
}

// GameSession 游戏会话，所有公开方法都是并发安全的
type GameSession struct {
	rules Rules
	rng   *rand.Rand
	log   *zap.Logger
	sink  EventSink

	phase      Phase
	handNumber int
	players    [NumSeats]*player.Player // 座位号 - 1 为下标

	deck    *card.Deck
	discard []card.Card

	pot      int
	tableBet int
	current  int            // 当前行动玩家的座位号，无人行动时为 0
	acted    [NumSeats]bool // 本轮下注中是否已行动
	pending  pending

	revealed map[int][]int // 钢铁侠：查看者 -> 被查看者
	rankings []Ranking
	message  string

	events []Event

	mu sync.RWMutex
}

// New 创建会话，玩家按 rules 初始化，尚未开局
func New(rules Rules, opts ...Option) *GameSession {
	rules = rules.normalize()
	s := &GameSession{
		rules:    rules,
		log:      zap.NewNop(),
		phase:    PhaseIdle,
		deck:     card.NewDeck(),
		revealed: make(map[int][]int),
		message:  "Press deal to start a new hand",
	}
	for i := range s.players {
		s.players[i] = player.New(i+1, rules.PlayerNames[i], rules.StartingChips)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules 返回牌桌参数
func (s *GameSession) Rules() Rules {
	return s.rules
}

// Phase 返回当前阶段
func (s *GameSession) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// CurrentPlayer 返回当前行动玩家座位号
func (s *GameSession) CurrentPlayer() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// do 在锁内执行一次操作，失败时丢弃事件，成功时在解锁后发布事件
func (s *GameSession) do(intent string, playerID int, fn func() error) error {
	s.mu.Lock()
	err := fn()
	events := s.events
	s.events = nil
	s.mu.Unlock()

	if err != nil {
		s.log.Info("intent rejected",
			zap.String("intent", intent),
			zap.Int("player", playerID),
			zap.Error(err))
		return err
	}
	if s.sink != nil {
		for _, e := range events {
			s.sink.HandleEvent(e)
		}
	}
	return nil
}

func (s *GameSession) emit(e Event) {
	e.HandNumber = s.handNumber
	e.Phase = s.phase
	s.events = append(s.events, e)
}

func (s *GameSession) setPhase(p Phase) {
	if s.phase != p {
		s.log.Debug("phase changed",
			zap.Int("hand", s.handNumber),
			zap.Stringer("from", s.phase),
			zap.Stringer("to", p))
	}
	s.phase = p
}

// seat 根据座位号返回玩家
func (s *GameSession) seat(id int) (*player.Player, error) {
	if id < 1 || id > NumSeats {
		return nil, apperrors.ErrUnknownPlayer
	}
	return s.players[id-1], nil
}

// actor 校验阶段与回合，返回当前行动玩家
func (s *GameSession) actor(playerID int, phases ...Phase) (*player.Player, error) {
	ok := false
	for _, p := range phases {
		if s.phase == p {
			ok = true
			break
		}
	}
	if !ok {
		return nil, apperrors.ErrWrongPhase
	}
	p, err := s.seat(playerID)
	if err != nil {
		return nil, err
	}
	if p.Folded {
		return nil, apperrors.ErrPlayerFolded
	}
	if s.current != playerID {
		return nil, apperrors.ErrNotYourTurn
	}
	return p, nil
}

func (s *GameSession) activePlayers() []*player.Player {
	active := make([]*player.Player, 0, NumSeats)
	for _, p := range s.players {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// nextActive 返回 from 之后的下一个未弃牌座位（循环）
func (s *GameSession) nextActive(from int) int {
	for i := 1; i <= NumSeats; i++ {
		id := (from-1+i)%NumSeats + 1
		if s.players[id-1].Active() {
			return id
		}
	}
	return 0
}

// firstActive 从 1 号位起第一个未弃牌座位
func (s *GameSession) firstActive() int {
	return s.nextActive(NumSeats)
}

func (s *GameSession) clearPending() {
	s.pending = pending{}
}

// setTurn 把行动权交给 id 并清空未完成的输入
func (s *GameSession) setTurn(id int) {
	s.current = id
	s.clearPending()
}

// StartNewGame 开始新一局：洗牌并进入发牌阶段，筹码保留
func (s *GameSession) StartNewGame() error {
	return s.do("start_new_game", 0, func() error {
		deck := card.NewDeck()
		deck.Shuffle(s.rng)

		s.handNumber++
		s.deck = deck
		s.discard = nil
		s.pot = 0
		s.tableBet = 0
		s.acted = [NumSeats]bool{}
		s.revealed = make(map[int][]int)
		s.rankings = nil
		for _, p := range s.players {
			p.ResetForDeal()
		}
		s.setTurn(0)
		s.setPhase(PhaseDeal)
		s.message = "Dealing cards..."

		s.emit(Event{
			Type:    EventDealStarted,
			Message: s.message,
			Cards:   deck.Peek(NumSeats * rule.HandSize),
		})
		return nil
	})
}

// CompleteDeal 发牌动画结束：每人发 5 张，进入第一轮下注
func (s *GameSession) CompleteDeal() error {
	return s.do("complete_deal", 0, func() error {
		if s.phase != PhaseDeal {
			return apperrors.ErrWrongPhase
		}
		hands, err := s.deck.DealHands(NumSeats, rule.HandSize)
		if err != nil {
			return mapError(err)
		}
		for i, p := range s.players {
			p.Hand = hands[i]
			s.emit(Event{Type: EventHandDealt, PlayerID: p.ID, Cards: append([]card.Card(nil), hands[i]...)})
		}

		s.setPhase(PhaseBet1)
		s.acted = [NumSeats]bool{}
		s.setTurn(s.firstActive())
		s.message = "First betting round - place your bets!"
		return nil
	})
}

// Deal 洗牌并立即发牌
// 两步分别加锁，并非原子操作：中间插入的 StartNewGame 会让 CompleteDeal 发的是新一局的牌
func (s *GameSession) Deal() error {
	if err := s.StartNewGame(); err != nil {
		return err
	}
	return s.CompleteDeal()
}

// mapError 把底层库的错误转换为 GameError
func mapError(err error) error {
	var ge *apperrors.GameError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ge):
		return ge
	case errors.Is(err, card.ErrInsufficientCards):
		return apperrors.ErrInsufficientCards
	case errors.Is(err, player.ErrInsufficientFunds):
		return apperrors.ErrInsufficientFunds
	case errors.Is(err, player.ErrInvalidIndex):
		return apperrors.ErrInvalidCardIndex
	default:
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidAction, err)
	}
}
