package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/config"
	"github.com/palemoky/marvel-battle-poker/internal/server/handler"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
	"github.com/palemoky/marvel-battle-poker/internal/server/table"
)

const connectBanDuration = time.Minute

// Server WebSocket 服务器
type Server struct {
	config    *config.Config
	store     storage.Store
	log       *zap.Logger
	clients   map[string]*Client
	clientsMu sync.RWMutex
	handler   *handler.Handler
	upgrader  websocket.Upgrader

	// 安全组件
	rateLimiter    *RateLimiter
	messageLimiter *MessageRateLimiter

	// 连接控制
	semaphore chan struct{}

	maintenance atomic.Bool
	httpServer  *http.Server
	stopMonitor context.CancelFunc
}

// NewServer 创建服务器实例，store 为 nil 时不做持久化
func NewServer(cfg *config.Config, store storage.Store, log *zap.Logger) *Server {
	if store == nil {
		store = storage.NopStore{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		config:         cfg,
		store:          store,
		log:            log,
		clients:        make(map[string]*Client),
		rateLimiter:    NewRateLimiter(cfg.Server.ConnectsPerMinute, connectBanDuration),
		messageLimiter: NewMessageRateLimiter(cfg.Server.MessagesPerSecond),
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return cfg.Server.OriginAllowed(r.Header.Get("Origin"))
		},
	}

	s.handler = handler.NewHandler(handler.HandlerDeps{
		Server: s,
		Store:  store,
		Logger: log,
		Table: table.Options{
			Rules:    cfg.Game.Rules(),
			BotDelay: cfg.Game.BotDelayDuration(),
		},
	})

	log.Info("server configured",
		zap.Int("max_connections", cfg.Server.MaxConnections),
		zap.Int("connects_per_minute", cfg.Server.ConnectsPerMinute),
		zap.Int("messages_per_second", cfg.Server.MessagesPerSecond),
		zap.Strings("allowed_origins", cfg.Server.AllowedOrigins))
	return s
}

// Routes 返回 HTTP 路由
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start 启动服务器，阻塞直到服务器关闭
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	ctx, cancel := context.WithCancel(context.Background())
	s.stopMonitor = cancel
	go s.monitorStats(ctx)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.log.Info("server listening", zap.String("addr", "ws://"+addr+"/ws"), zap.Int("cpus", runtime.NumCPU()))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// GetOnlineCount 获取在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Handler 消息处理器
func (s *Server) Handler() *handler.Handler {
	return s.handler
}
