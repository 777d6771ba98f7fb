package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/marvel-battle-poker/internal/game/session"
)

const (
	defaultHost         = "0.0.0.0"
	defaultPort         = 1780
	defaultMaxConns     = 500
	defaultConnPerMin   = 30
	defaultMsgPerSecond = 20
	defaultRedisAddr    = "localhost:6379"
	defaultRedisTTL     = 24 * 60 // 分钟
	defaultStartChips   = 500
	defaultStealAmount  = 10
	defaultMaxSwapCards = 3
	defaultBotDelay     = 600 // 毫秒
	defaultLogLevel     = "info"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host              string   `yaml:"host"`
	Port              int      `yaml:"port"`
	AllowedOrigins    []string `yaml:"allowed_origins"` // 为空或包含 "*" 时不校验 Origin
	MaxConnections    int      `yaml:"max_connections"`
	ConnectsPerMinute int      `yaml:"connects_per_minute"` // 单个 IP 每分钟最多建立的连接
	MessagesPerSecond int      `yaml:"messages_per_second"` // 单个连接每秒最多发送的消息
}

// RedisConfig Redis 配置，未启用时牌桌不做持久化
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      int    `yaml:"ttl"` // 牌桌存档过期时间（分钟）
}

// GameConfig 游戏配置
type GameConfig struct {
	StartingChips int      `yaml:"starting_chips"`
	StealAmount   int      `yaml:"steal_amount"`
	MaxSwapCards  int      `yaml:"max_swap_cards"`
	PlayerNames   []string `yaml:"player_names"` // 按座位顺序，缺省的座位使用默认名字
	BotDelay      int      `yaml:"bot_delay"`    // NPC 每步之间的停顿（毫秒）
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug/info/warn/error
	File  string `yaml:"file"`  // 为空时使用 ~/.marvel-battle-poker/debug.log
}

// TTLDuration 返回牌桌存档过期时长
func (c *RedisConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Minute
}

// BotDelayDuration 返回 NPC 行动间隔
func (c *GameConfig) BotDelayDuration() time.Duration {
	return time.Duration(c.BotDelay) * time.Millisecond
}

// Rules 转换为会话规则
func (c *GameConfig) Rules() session.Rules {
	rules := session.DefaultRules()
	if c.StartingChips > 0 {
		rules.StartingChips = c.StartingChips
	}
	if c.StealAmount > 0 {
		rules.StealAmount = c.StealAmount
	}
	if c.MaxSwapCards > 0 {
		rules.MaxSwapCards = c.MaxSwapCards
	}
	for i, name := range c.PlayerNames {
		if i >= session.NumSeats {
			break
		}
		if name = strings.TrimSpace(name); name != "" {
			rules.PlayerNames[i] = name
		}
	}
	return rules
}

// OriginAllowed 判断 WebSocket 握手的 Origin 是否被允许
func (c *ServerConfig) OriginAllowed(origin string) bool {
	if len(c.AllowedOrigins) == 0 || origin == "" {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default 返回默认配置，环境变量仍然生效
func Default() *Config {
	var cfg Config
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = defaultMaxConns
	}
	if cfg.Server.ConnectsPerMinute == 0 {
		cfg.Server.ConnectsPerMinute = defaultConnPerMin
	}
	if cfg.Server.MessagesPerSecond == 0 {
		cfg.Server.MessagesPerSecond = defaultMsgPerSecond
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = defaultRedisTTL
	}
	if cfg.Game.StartingChips == 0 {
		cfg.Game.StartingChips = defaultStartChips
	}
	if cfg.Game.StealAmount == 0 {
		cfg.Game.StealAmount = defaultStealAmount
	}
	if cfg.Game.MaxSwapCards == 0 {
		cfg.Game.MaxSwapCards = defaultMaxSwapCards
	}
	if cfg.Game.BotDelay == 0 {
		cfg.Game.BotDelay = defaultBotDelay
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}

// applyEnv 用环境变量覆盖配置文件
func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v, ok := envInt("SERVER_PORT"); ok {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SERVER_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v, err := strconv.ParseBool(os.Getenv("REDIS_ENABLED")); err == nil {
		cfg.Redis.Enabled = v
	}
	if v, ok := envInt("GAME_STARTING_CHIPS"); ok {
		cfg.Game.StartingChips = v
	}
	if v, ok := envInt("GAME_BOT_DELAY"); ok {
		cfg.Game.BotDelay = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0, false
	}
	return v, true
}
