package client

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/logger"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/protocol/codec"
)

// readPump 从服务器读取消息，连接意外断开时尝试重连
// 退出时关闭 stop 让同一连接的 writePump 退出
func (c *Client) readPump(conn *websocket.Conn, stop chan struct{}) {
	defer func() {
		close(stop)
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.mu.RLock()
		closed := c.closed
		c.mu.RUnlock()
		if closed {
			if c.OnClose != nil {
				c.OnClose()
			}
			return
		}
		if c.TableID() != "" && !c.reconnecting.Load() {
			go c.tryReconnect()
			return
		}
		c.Close()
		if c.OnClose != nil {
			c.OnClose()
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) && c.OnError != nil {
				c.OnError(err)
			}
			return
		}

		pooled, err := codec.Decode(c.Format, data)
		if err != nil {
			logger.L().Warn("decode server message", zap.Error(err))
			continue
		}
		// 消息会交给 UI 长期持有，复制出池
		msg := &protocol.Message{Type: pooled.Type, Payload: append([]byte(nil), pooled.Payload...)}
		codec.PutMessage(pooled)

		c.observe(msg)

		if c.OnMessage != nil {
			c.OnMessage(msg)
		}
		c.mu.RLock()
		receive := c.receive
		c.mu.RUnlock()
		select {
		case receive <- msg:
		default:
		}
	}
}

// observe 记录连接信息和网络延迟
func (c *Client) observe(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgConnected:
		payload, err := protocol.ParsePayload[protocol.ConnectedPayload](msg)
		if err != nil {
			return
		}
		c.clientID.Store(payload.ClientID)
		c.tableID.Store(payload.TableID)
		if c.reconnecting.CompareAndSwap(true, false) {
			c.reconnectCount = 0
			c.backoff = reconnectInterval
			if c.OnReconnect != nil {
				c.OnReconnect()
			}
		}

	case protocol.MsgPong:
		payload, err := protocol.ParsePayload[protocol.PongPayload](msg)
		if err != nil {
			return
		}
		latency := time.Now().UnixMilli() - payload.ClientTimestamp
		c.latency.Store(latency)
		if c.OnLatencyUpdate != nil {
			c.OnLatencyUpdate(latency)
		}
	}
}

// writePump 向服务器写入消息
func (c *Client) writePump(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	c.mu.RLock()
	send, done := c.send, c.done
	c.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		_ = conn.Close()
	}()

	frame := websocket.TextMessage
	if c.Format.Binary() {
		frame = websocket.BinaryMessage
	}

	for {
		select {
		case data := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(frame, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-stop:
			return

		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
