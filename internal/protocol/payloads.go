package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// NewGamePayload 开始新一局
type NewGamePayload struct {
	Instant bool `json:"instant"` // true 时跳过发牌动画立即发牌
}

// BetPayload 下注请求
type BetPayload struct {
	Action string `json:"action"` // check/bet/call/fold
	Amount int    `json:"amount,omitempty"`
}

// SelectCardPayload 选牌请求
type SelectCardPayload struct {
	Index int `json:"index"`
}

// UsePowerPayload 使用能力请求
type UsePowerPayload struct {
	TargetID int `json:"target_id,omitempty"` // 0 表示未指定目标
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Type  string `json:"type"` // total/daily，默认 total
	Limit int    `json:"limit"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ClientID   string `json:"client_id"`
	TableID    string `json:"table_id"`
	SeatID     int    `json:"seat_id"`
	PlayerName string `json:"player_name"`
	Restored   bool   `json:"restored"` // 是否从存档恢复了牌桌
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// CardInfo 牌的传输格式
type CardInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Power int    `json:"power"`
	Team  string `json:"team"`
}

// PlayerInfo 座位信息，对手手牌在不可见时为空
type PlayerInfo struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Chips        int        `json:"chips"`
	Bet          int        `json:"bet"`
	Committed    int        `json:"committed"`
	Folded       bool       `json:"folded"`
	UsedPower    bool       `json:"used_power"`
	IsHuman      bool       `json:"is_human"`
	CardsCount   int        `json:"cards_count"`
	Hand         []CardInfo `json:"hand,omitempty"`
	HandVisible  bool       `json:"hand_visible"`
	Power        string     `json:"power,omitempty"`
	PowerSummary string     `json:"power_summary,omitempty"`
}

// RankingInfo 摊牌排名
type RankingInfo struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	Category string `json:"category"`
	Winner   bool   `json:"winner"`
	Winnings int    `json:"winnings"`
}

// TableView 某个观察者看到的牌桌
type TableView struct {
	Viewer        int           `json:"viewer"`
	Phase         string        `json:"phase"`
	HandNumber    int           `json:"hand_number"`
	Pot           int           `json:"pot"`
	TableBet      int           `json:"table_bet"`
	ToCall        int           `json:"to_call"`
	CurrentPlayer int           `json:"current_player"`
	Message       string        `json:"message"`
	Instruction   string        `json:"instruction,omitempty"`
	Players       []PlayerInfo  `json:"players"`
	Selected      []int         `json:"selected,omitempty"`
	PendingTarget int           `json:"pending_target,omitempty"`
	DeckSize      int           `json:"deck_size"`
	MaxSwapCards  int           `json:"max_swap_cards"`
	Rankings      []RankingInfo `json:"rankings,omitempty"`
}

// EventPayload 游戏事件
type EventPayload struct {
	Type       string        `json:"type"`
	HandNumber int           `json:"hand_number"`
	Phase      string        `json:"phase"`
	PlayerID   int           `json:"player_id,omitempty"`
	TargetID   int           `json:"target_id,omitempty"`
	Amount     int           `json:"amount,omitempty"`
	Action     string        `json:"action,omitempty"`
	Message    string        `json:"message,omitempty"`
	Cards      []CardInfo    `json:"cards,omitempty"`
	Rankings   []RankingInfo `json:"rankings,omitempty"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerName string  `json:"player_name"`
	Winnings   int64   `json:"winnings"`
	HandsWon   int     `json:"hands_won"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Type    string             `json:"type"`
	Entries []LeaderboardEntry `json:"entries"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerName    string  `json:"player_name"`
	HandsPlayed   int     `json:"hands_played"`
	HandsWon      int     `json:"hands_won"`
	WinRate       float64 `json:"win_rate"`
	TotalWinnings int     `json:"total_winnings"`
	BiggestPot    int     `json:"biggest_pot"`
	CurrentStreak int     `json:"current_streak"`
	MaxWinStreak  int     `json:"max_win_streak"`
	Rank          int     `json:"rank"` // 0 表示未上榜
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
