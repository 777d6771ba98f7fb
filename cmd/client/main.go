package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/logger"
	"github.com/palemoky/marvel-battle-poker/internal/network/client"
	"github.com/palemoky/marvel-battle-poker/internal/protocol/codec"
	"github.com/palemoky/marvel-battle-poker/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1780", "服务器地址")
	name := flag.String("name", "", "玩家名字")
	table := flag.String("table", "", "要恢复的牌桌 ID")
	format := flag.String("format", "json", "线上编码: json 或 pb")
	logLevel := flag.String("log-level", "info", "日志级别")
	flag.Parse()

	wire, err := codec.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// 终端被界面占用，日志只写文件
	log, err := logger.Init(logger.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	serverURL := (&url.URL{Scheme: "ws", Host: *serverAddr, Path: "/ws"}).String()
	log.Info("client starting", zap.String("server", serverURL), zap.Stringer("format", wire))

	if err := ui.Run(serverURL, client.Options{Name: *name, TableID: *table, Format: wire}); err != nil {
		log.Error("client exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "启动客户端时出错: %v\n", err)
		os.Exit(1)
	}
}
