package client

import (
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/logger"
)

// StartHeartbeat 启动心跳检测
func (c *Client) StartHeartbeat() {
	go func() {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		c.mu.RLock()
		done := c.done
		c.mu.RUnlock()
		for {
			select {
			case <-ticker.C:
				if c.IsConnected() {
					_ = c.Ping()
				}
			case <-done:
				return
			}
		}
	}()
}

// tryReconnect 带着牌桌 ID 重新连接，服务器会从存档恢复牌桌
func (c *Client) tryReconnect() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			c.reconnecting.Store(false)
		}
	}()

	if !c.reconnecting.CompareAndSwap(false, true) {
		return
	}

	for c.reconnectCount < maxReconnectAttempts {
		c.reconnectCount++
		if c.OnReconnecting != nil {
			c.OnReconnecting(c.reconnectCount, maxReconnectAttempts)
		}

		// 指数退避
		time.Sleep(c.backoff)
		c.backoff = min(c.backoff*2, maxBackoff)

		conn, err := c.dial()
		if err != nil {
			logger.L().Debug("reconnect failed", zap.Int("attempt", c.reconnectCount), zap.Error(err))
			continue
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = conn.Close()
			return
		}
		c.conn = conn
		c.mu.Unlock()

		// 成功与否由 connected 消息决定
		stop := make(chan struct{})
		go c.readPump(conn, stop)
		go c.writePump(conn, stop)
		return
	}

	logger.L().Warn("giving up reconnect", zap.Int("attempts", c.reconnectCount))
	c.reconnecting.Store(false)
	c.Close()
}
