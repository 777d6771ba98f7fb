// Package table 一个连接对应的一张牌桌：真人座位 + NPC 座位 + 存档
package table

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/game/player"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/protocol/convert"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
	"github.com/palemoky/marvel-battle-poker/internal/types"
)

const (
	defaultBotDelay = 600 * time.Millisecond
	storeTimeout    = 3 * time.Second
)

// Options 牌桌参数
type Options struct {
	ID        string // 为空时生成新 ID
	Rules     session.Rules
	BotDelay  time.Duration // NPC 每步之间的停顿
	DealDelay time.Duration // 发牌动画时长，为 0 时取 BotDelay
	Store     storage.Store
	Logger    *zap.Logger
	Rand      *rand.Rand
}

// Table 牌桌
type Table struct {
	id        string
	seat      int
	game      *session.GameSession
	store     storage.Store
	log       *zap.Logger
	out       types.MessageSender
	botDelay  time.Duration
	dealDelay time.Duration

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	started  bool
	recorded int // 已记录到排行榜的手牌编号
}

// New 创建牌桌，out 接收发给真人玩家的消息
func New(out types.MessageSender, opts Options) *Table {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.BotDelay <= 0 {
		opts.BotDelay = defaultBotDelay
	}
	if opts.DealDelay <= 0 {
		opts.DealDelay = opts.BotDelay
	}
	if opts.Store == nil {
		opts.Store = storage.NopStore{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &Table{
		id:        opts.ID,
		seat:      player.HumanID,
		store:     opts.Store,
		log:       opts.Logger.With(zap.String("table", opts.ID)),
		out:       out,
		botDelay:  opts.BotDelay,
		dealDelay: opts.DealDelay,
		wake:      make(chan struct{}, 1),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	sessOpts := []session.Option{session.WithSink(t), session.WithLogger(t.log)}
	if opts.Rand != nil {
		sessOpts = append(sessOpts, session.WithRand(opts.Rand))
	}
	t.game = session.New(opts.Rules, sessOpts...)
	return t
}

// ID 牌桌 ID
func (t *Table) ID() string { return t.id }

// Seat 真人玩家的座位
func (t *Table) Seat() int { return t.seat }

// PlayerName 真人玩家的名字
func (t *Table) PlayerName() string {
	if p, ok := t.game.Snapshot().Player(t.seat); ok {
		return p.Name
	}
	return t.game.Rules().PlayerNames[t.seat-1]
}

// InHand 是否有一手牌正在进行
func (t *Table) InHand() bool {
	switch t.game.Phase() {
	case session.PhaseIdle, session.PhaseShowdown:
		return false
	default:
		return true
	}
}

// Session 底层游戏会话
func (t *Table) Session() *session.GameSession { return t.game }

// Load 从存档恢复牌桌，没有存档时返回 false
func (t *Table) Load(ctx context.Context) (bool, error) {
	st, err := t.store.LoadTable(ctx, t.id)
	if err != nil || st == nil {
		return false, err
	}
	if err := t.game.Restore(*st); err != nil {
		return false, err
	}

	t.mu.Lock()
	if st.Phase == session.PhaseShowdown {
		t.recorded = st.HandNumber
	}
	t.mu.Unlock()

	t.log.Info("table restored", zap.Int("hand", st.HandNumber), zap.Stringer("phase", st.Phase))
	return true, nil
}

// Start 启动 NPC 协程
func (t *Table) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	go t.run()
	t.notify()
}

// Close 停止 NPC 协程，存档保留以便重连
func (t *Table) Close() {
	t.cancel()
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()
	if started {
		<-t.done
	}
}

// HandleEvent 实现 session.EventSink，按真人视角转发事件
func (t *Table) HandleEvent(e session.Event) {
	if e.Type == session.EventShowdownComplete {
		t.record(e)
	}
	payload, ok := convert.EventFor(e, t.seat)
	if !ok {
		return
	}
	t.out.SendMessage(protocol.MustNewMessage(protocol.MsgEvent, payload))
}

// SendSnapshot 发送真人视角的牌桌
func (t *Table) SendSnapshot() {
	view := convert.ViewFor(t.game.Snapshot(), t.seat)
	t.out.SendMessage(protocol.MustNewMessage(protocol.MsgSnapshot, view))
}

// record 把真人玩家的结果写入排行榜，每手只记录一次
func (t *Table) record(e session.Event) {
	t.mu.Lock()
	if e.HandNumber <= t.recorded {
		t.mu.Unlock()
		return
	}
	t.recorded = e.HandNumber
	t.mu.Unlock()

	r := storage.HandResult{PlayerName: t.PlayerName()}
	for _, rk := range e.Rankings {
		r.Pot += rk.Winnings
		if rk.PlayerID == t.seat && rk.Winner {
			r.Won = true
			r.Winnings = rk.Winnings
		}
	}

	ctx, cancel := context.WithTimeout(t.ctx, storeTimeout)
	defer cancel()
	if err := t.store.RecordResult(ctx, r); err != nil {
		t.log.Warn("record result failed", zap.Error(err))
	}
}

// persist 保存牌桌状态
func (t *Table) persist() {
	st := t.game.Export()
	ctx, cancel := context.WithTimeout(t.ctx, storeTimeout)
	defer cancel()
	if err := t.store.SaveTable(ctx, t.id, &st); err != nil {
		t.log.Warn("save table failed", zap.Error(err))
	}
}

func (t *Table) notify() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// after 每次状态变化后：推送快照、存档、唤醒 NPC
func (t *Table) after() {
	t.SendSnapshot()
	t.persist()
	t.notify()
}
