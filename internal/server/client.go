package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/protocol/codec"
)

const (
	// 写入超时
	writeWait = 10 * time.Second

	// 读取超时（pong 等待时间）
	pongWait = 60 * time.Second

	// ping 发送间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小
	maxMessageSize = 4096

	// 超速警告达到该次数后断开
	maxRateWarnings = 5
)

// Client 一个 WebSocket 连接，对应一张牌桌上的真人座位
type Client struct {
	ID     string
	Name   string
	IP     string
	Format codec.Format

	server *Server
	conn   *websocket.Conn
	send   chan []byte
	log    *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// NewClient 创建新客户端
func NewClient(s *Server, conn *websocket.Conn, name string, format codec.Format) *Client {
	id := uuid.NewString()
	return &Client{
		ID:     id,
		Name:   name,
		Format: format,
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
		log:    s.log.With(zap.String("client", id)),
	}
}

// GetID 客户端 ID
func (c *Client) GetID() string { return c.ID }

// GetName 客户端请求的玩家名字
func (c *Client) GetName() string { return c.Name }

// ReadPump 从 WebSocket 读取消息
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("read error", zap.Error(err))
			}
			return
		}

		allowed, warning := c.server.messageLimiter.AllowMessage(c.ID)
		if !allowed {
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeRateLimit))
			if c.server.messageLimiter.GetWarningCount(c.ID) > maxRateWarnings {
				c.log.Warn("disconnecting flooding client", zap.String("ip", c.IP))
				return
			}
			continue
		}
		if warning {
			c.SendMessage(protocol.NewErrorMessageText(protocol.ErrCodeRateLimit, "Slow down"))
		}

		msg, err := codec.Decode(c.Format, data)
		if err != nil {
			c.log.Debug("decode failed", zap.Error(err))
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}
		c.server.handler.Handle(c, msg)
		codec.PutMessage(msg)
	}
}

// WritePump 向 WebSocket 写入消息
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	frame := websocket.TextMessage
	if c.Format.Binary() {
		frame = websocket.BinaryMessage
	}

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 通道已关闭
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(frame, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage 发送消息给客户端，缓冲区满时断开连接
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := codec.Encode(c.Format, msg)
	if err != nil {
		c.log.Error("encode failed", zap.String("type", string(msg.Type)), zap.Error(err))
		return
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn("send buffer full")
		go c.Close()
	}
}

// handleDisconnect 断开时关闭牌桌并注销连接，存档保留
func (c *Client) handleDisconnect() {
	c.server.handler.CloseTable(c.ID)
	c.server.messageLimiter.RemoveClient(c.ID)
	c.server.unregisterClient(c)
	c.Close()
}

// Close 关闭发送通道，WritePump 随后发送关闭帧
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
