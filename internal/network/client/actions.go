package client

import (
	"time"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// --- 便捷方法 ---

// NewGame 开始新一局
func (c *Client) NewGame(instant bool) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgNewGame, protocol.NewGamePayload{Instant: instant}))
}

// Bet 下注动作：check/bet/call/fold
func (c *Client) Bet(action string, amount int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgBet, protocol.BetPayload{
		Action: action,
		Amount: amount,
	}))
}

// Check 过牌
func (c *Client) Check() error { return c.Bet("check", 0) }

// Call 跟注
func (c *Client) Call() error { return c.Bet("call", 0) }

// Fold 弃牌
func (c *Client) Fold() error { return c.Bet("fold", 0) }

// SelectCard 选择/取消选择手牌
func (c *Client) SelectCard(index int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgSelectCard, protocol.SelectCardPayload{Index: index}))
}

// UsePower 使用能力，targetID 为 0 时使用已选目标
func (c *Client) UsePower(targetID int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgUsePower, protocol.UsePowerPayload{TargetID: targetID}))
}

// SkipPower 放弃能力
func (c *Client) SkipPower() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgSkipPower, nil))
}

// ConfirmSwap 确认换牌
func (c *Client) ConfirmSwap() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgConfirmSwap, nil))
}

// StandPat 不换牌
func (c *Client) StandPat() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgStandPat, nil))
}

// GetLeaderboard 获取排行榜，kind 为 total 或 daily
func (c *Client) GetLeaderboard(kind string, limit int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Type:  kind,
		Limit: limit,
	}))
}

// GetStats 获取个人统计
func (c *Client) GetStats() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetStats, nil))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
