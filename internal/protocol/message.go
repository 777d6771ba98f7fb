package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing MessageType = "ping" // 心跳 ping

	// 游戏操作
	MsgNewGame     MessageType = "new_game"     // 开始新一局
	MsgBet         MessageType = "bet"          // 下注
	MsgSelectCard  MessageType = "select_card"  // 选择/取消选择手牌
	MsgUsePower    MessageType = "use_power"    // 使用能力
	MsgSkipPower   MessageType = "skip_power"   // 放弃能力
	MsgConfirmSwap MessageType = "confirm_swap" // 确认换牌
	MsgStandPat    MessageType = "stand_pat"    // 不换牌

	// 排行榜
	MsgGetLeaderboard MessageType = "get_leaderboard"
	MsgGetStats       MessageType = "get_stats"
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	MsgSnapshot MessageType = "snapshot" // 牌桌状态（已按观察者隐藏对手手牌）
	MsgEvent    MessageType = "event"    // 游戏事件，客户端据此播放音效

	MsgLeaderboardResult MessageType = "leaderboard_result"
	MsgStatsResult       MessageType = "stats_result"

	// 错误
	MsgError MessageType = "error"
)
