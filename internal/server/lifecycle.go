package server

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

const (
	monitorInterval       = 30 * time.Second
	shutdownCheckInterval = time.Second
)

// monitorStats 定期记录服务器状态
func (s *Server) monitorStats(ctx context.Context) {
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		s.log.Info("server stats",
			zap.Int("online", s.GetOnlineCount()),
			zap.Int("active_hands", s.handler.ActiveHands()),
			zap.Int("goroutines", runtime.NumGoroutine()),
			zap.Int("connections", len(s.semaphore)),
			zap.Float64("alloc_mb", float64(m.Alloc)/1024/1024))
	}
}

// EnterMaintenanceMode 进入维护模式：拒绝新连接和新牌局，进行中的牌局可以打完
func (s *Server) EnterMaintenanceMode() {
	if s.maintenance.Swap(true) {
		return
	}
	s.broadcast(protocol.NewErrorMessage(protocol.ErrCodeServerMaintenance))
	s.log.Info("maintenance mode enabled")
}

// IsMaintenanceMode 检查是否在维护模式
func (s *Server) IsMaintenanceMode() bool {
	return s.maintenance.Load()
}

// broadcast 发送消息给所有客户端
func (s *Server) broadcast(msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// GracefulShutdown 进入维护模式，等待进行中的牌局结束后关闭服务器
func (s *Server) GracefulShutdown(timeout time.Duration) {
	s.EnterMaintenanceMode()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(shutdownCheckInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		active := s.handler.ActiveHands()
		if active == 0 {
			break
		}
		s.log.Info("waiting for hands to finish", zap.Int("active_hands", active))
		<-ticker.C
	}
	if active := s.handler.ActiveHands(); active > 0 {
		s.log.Warn("shutdown timeout, closing active hands", zap.Int("active_hands", active))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Shutdown(ctx)
}

// Shutdown 关闭所有连接和存储
func (s *Server) Shutdown(ctx context.Context) {
	if s.stopMonitor != nil {
		s.stopMonitor()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.log.Warn("http shutdown", zap.Error(err))
		}
	}

	// 关闭所有客户端连接
	s.clientsMu.RLock()
	clients := make([]*Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.clientsMu.RUnlock()
	for _, c := range clients {
		c.Close()
	}

	s.rateLimiter.Stop()
	if err := s.store.Close(); err != nil {
		s.log.Warn("store close", zap.Error(err))
	}
	s.log.Info("server stopped")
}
