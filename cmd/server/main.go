package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/config"
	"github.com/palemoky/marvel-battle-poker/internal/logger"
	"github.com/palemoky/marvel-battle-poker/internal/server"
	"github.com/palemoky/marvel-battle-poker/internal/server/storage"
)

const shutdownTimeout = 2 * time.Minute

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}

	log, err := logger.Init(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File, Console: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	if cfgErr != nil {
		log.Warn("config not loaded, using defaults", zap.String("path", *configPath), zap.Error(cfgErr))
	}

	// Redis 未启用时牌桌只保存在内存中
	var store storage.Store
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rs, err := storage.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTLDuration())
		if err != nil {
			cancel()
			log.Fatal("redis unavailable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		if ids, err := rs.TableIDs(ctx); err == nil {
			log.Info("saved tables available for restore", zap.Int("count", len(ids)))
		}
		cancel()
		store = rs
	}

	srv := server.NewServer(cfg, store, log)

	// 优雅关闭：等待进行中的牌局结束
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		<-quit
		log.Info("shutting down, waiting for hands in progress")
		srv.GracefulShutdown(shutdownTimeout)
		close(done)
	}()

	log.Info("marvel battle poker server starting")
	if err := srv.Start(); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
	<-done
}
