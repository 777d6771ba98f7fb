package handler

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/server/table"
	"github.com/palemoky/marvel-battle-poker/internal/types"
)

const maxNameLength = 20

// handlePing 处理心跳消息
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		return
	}

	// 立即回复 pong
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// OpenTable 为新连接打开牌桌
// tableID 非空时尝试从存档恢复，失败则用新 ID 开一张新桌，避免覆盖原存档
func (h *Handler) OpenTable(client types.ClientInterface, tableID string) *table.Table {
	opts := h.tableOpts
	opts.Store = h.store
	opts.Logger = h.log
	if name := sanitizeName(client.GetName()); name != "" {
		opts.Rules.PlayerNames[0] = name
	}

	var t *table.Table
	restored := false
	if tableID != "" {
		h.takeOver(tableID)
		opts.ID = tableID
		t = table.New(client, opts)

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		ok, err := t.Load(ctx)
		cancel()
		if err != nil {
			h.log.Warn("restore table failed", zap.String("table", tableID), zap.Error(err))
		}
		if restored = ok; !ok {
			t.Close()
			t = nil
		}
	}
	if t == nil {
		opts.ID = ""
		t = table.New(client, opts)
	}

	h.SetTable(client.GetID(), t)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		ClientID:   client.GetID(),
		TableID:    t.ID(),
		SeatID:     t.Seat(),
		PlayerName: t.PlayerName(),
		Restored:   restored,
	}))
	t.SendSnapshot()
	t.Start()

	h.log.Info("table opened",
		zap.String("client", client.GetID()),
		zap.String("table", t.ID()),
		zap.Bool("restored", restored))
	return t
}

// takeOver 同一张牌桌只能由一个连接驱动，旧连接的牌桌先停下，存档保留
func (h *Handler) takeOver(tableID string) {
	h.tablesMu.Lock()
	var old *table.Table
	for clientID, t := range h.tables {
		if t.ID() == tableID {
			old = t
			delete(h.tables, clientID)
			h.log.Info("table taken over", zap.String("table", tableID), zap.String("previous_client", clientID))
			break
		}
	}
	h.tablesMu.Unlock()

	if old != nil {
		old.Close()
	}
}

// CloseTable 连接断开时停止牌桌，存档保留以便重连
func (h *Handler) CloseTable(clientID string) {
	t := h.GetTable(clientID)
	if t == nil {
		return
	}
	h.SetTable(clientID, nil)
	t.Close()
	h.log.Info("table closed", zap.String("client", clientID), zap.String("table", t.ID()))
}

// sanitizeName 清理玩家自定义名字
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	return name
}
