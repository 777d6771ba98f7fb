package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
	base     = zap.NewNop()
)

// Options controls where the logger writes.
type Options struct {
	Level   string // debug/info/warn/error, defaults to info
	File    string // empty means ~/.marvel-battle-poker/debug.log
	Console bool   // also write human-readable output to stderr
}

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init opens the log file (rotating it past 10MB) and builds the global logger.
func Init(opts Options) (*zap.Logger, error) {
	path := opts.File
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".marvel-battle-poker", "debug.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := openRotated(path)
	if err != nil {
		return nil, err
	}
	debugLog = f
	logPath = path

	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(f), level),
	}
	if opts.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level))
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	base.Info("logger initialized", zap.String("path", logPath))
	return base, nil
}

func openRotated(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if info, err := f.Stat(); err == nil && info.Size() > maxLogSize {
		_ = f.Close()
		backupPath := fmt.Sprintf("%s.%d", path, time.Now().Unix())
		_ = os.Rename(path, backupPath)
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create new log file: %w", err)
		}
	}
	return f, nil
}

// L returns the global logger, a no-op until Init succeeds.
func L() *zap.Logger {
	return base
}

// Close flushes the logger and closes the log file.
func Close() {
	_ = base.Sync()
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
	base = zap.NewNop()
}

// LogPanic logs a recovered panic with stack trace.
func LogPanic(r any) {
	base.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
