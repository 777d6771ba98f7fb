package handler

import (
	"sync"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
	"github.com/palemoky/marvel-battle-poker/internal/server/table"
	"github.com/palemoky/marvel-battle-poker/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server types.ServerInterface
	Store  storage.Store
	Logger *zap.Logger
	Table  table.Options // 新牌桌的规则与节奏，ID/Store/Logger 由处理器填充
}

// Handler 消息处理器
type Handler struct {
	server    types.ServerInterface
	store     storage.Store
	log       *zap.Logger
	tableOpts table.Options
	handlers  map[protocol.MessageType]handlerFunc
	tables    map[string]*table.Table // 按客户端 ID
	tablesMu  sync.RWMutex
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	if deps.Store == nil {
		deps.Store = storage.NopStore{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	h := &Handler{
		server:    deps.Server,
		store:     deps.Store,
		log:       deps.Logger,
		tableOpts: deps.Table,
		tables:    make(map[string]*table.Table),
	}
	h.initHandlers()
	return h
}

// GetTable 获取客户端的牌桌
func (h *Handler) GetTable(clientID string) *table.Table {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	return h.tables[clientID]
}

// SetTable 设置客户端的牌桌，t 为 nil 时移除
func (h *Handler) SetTable(clientID string, t *table.Table) {
	h.tablesMu.Lock()
	defer h.tablesMu.Unlock()
	if t == nil {
		delete(h.tables, clientID)
	} else {
		h.tables[clientID] = t
	}
}

// TableCount 当前打开的牌桌数量
func (h *Handler) TableCount() int {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	return len(h.tables)
}

// ActiveHands 正在进行中的牌局数量
func (h *Handler) ActiveHands() int {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	n := 0
	for _, t := range h.tables {
		if t.InHand() {
			n++
		}
	}
	return n
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 游戏操作
		protocol.MsgNewGame:     h.handleNewGame,
		protocol.MsgBet:         h.handleBet,
		protocol.MsgSelectCard:  h.handleSelectCard,
		protocol.MsgUsePower:    h.handleUsePower,
		protocol.MsgSkipPower:   func(c types.ClientInterface, _ *protocol.Message) { h.handleSkipPower(c) },
		protocol.MsgConfirmSwap: func(c types.ClientInterface, _ *protocol.Message) { h.handleConfirmSwap(c) },
		protocol.MsgStandPat:    func(c types.ClientInterface, _ *protocol.Message) { h.handleStandPat(c) },

		// 信息查询
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	h.log.Warn("unknown message type",
		zap.String("type", string(msg.Type)),
		zap.String("client", client.GetID()),
		zap.Int("payload_bytes", len(msg.Payload)))
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}
