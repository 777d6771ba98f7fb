package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/protocol/codec"
)

// handleWebSocket 处理 WebSocket 连接
// 查询参数：name 玩家名字，table 要恢复的牌桌 ID，format 编码格式（json/pb）
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)
	log := s.log.With(zap.String("ip", clientIP))

	// 维护模式检查（最优先）
	if s.IsMaintenanceMode() {
		log.Info("rejecting connection during maintenance")
		http.Error(w, "Server is under maintenance, please try again later", http.StatusServiceUnavailable)
		return
	}

	if !s.config.Server.OriginAllowed(r.Header.Get("Origin")) {
		log.Warn("origin rejected", zap.String("origin", r.Header.Get("Origin")))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	if !s.rateLimiter.Allow(clientIP) {
		log.Warn("connection rate limited")
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	query := r.URL.Query()
	format, err := codec.ParseFormat(query.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 连接数限制，断开时释放
	select {
	case s.semaphore <- struct{}{}:
	default:
		log.Warn("connection limit reached", zap.Int("max", cap(s.semaphore)))
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	name := strings.TrimSpace(query.Get("name"))
	if name == "" {
		name = GenerateNickname()
	}
	client := NewClient(s, conn, name, format)
	client.IP = clientIP
	s.registerClient(client)

	go client.WritePump()
	s.handler.OpenTable(client, query.Get("table"))
	go client.ReadPump()

	log.Info("client connected", zap.String("client", client.ID), zap.Stringer("format", format))
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	status := "ok"
	if s.IsMaintenanceMode() {
		status = "maintenance"
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":       status,
		"online":       s.GetOnlineCount(),
		"active_hands": s.handler.ActiveHands(),
	})
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端并释放连接名额
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		<-s.semaphore
		client.log.Info("client disconnected")
	}
}
