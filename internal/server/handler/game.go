package handler

import (
	"go.uber.org/zap"

	"github.com/palemoky/marvel-battle-poker/internal/apperrors"
	"github.com/palemoky/marvel-battle-poker/internal/game/session"
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/server/table"
	"github.com/palemoky/marvel-battle-poker/internal/types"
)

// withTable 找到客户端的牌桌并执行操作，失败时回复错误
func (h *Handler) withTable(client types.ClientInterface, op string, fn func(t *table.Table) error) {
	t := h.GetTable(client.GetID())
	if t == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNoTable))
		return
	}
	if err := fn(t); err != nil {
		h.log.Debug("intent rejected",
			zap.String("op", op),
			zap.String("client", client.GetID()),
			zap.Error(err))
		sendError(client, err)
	}
}

// sendError 把 GameError 转换为错误消息
func sendError(client types.ClientInterface, err error) {
	client.SendMessage(protocol.NewErrorMessageText(apperrors.Code(err), err.Error()))
}

// handleNewGame 开始新一局
func (h *Handler) handleNewGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.NewGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 维护模式下不允许开新局，进行中的牌局可以打完
	if h.server != nil && h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeServerMaintenance))
		return
	}

	h.withTable(client, "new_game", func(t *table.Table) error { return t.NewGame(payload.Instant) })
}

// handleBet 处理下注
func (h *Handler) handleBet(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.BetPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	action := session.BetAction(payload.Action)
	switch action {
	case session.ActionCheck, session.ActionBet, session.ActionCall, session.ActionFold:
	default:
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidAction))
		return
	}

	h.withTable(client, "bet", func(t *table.Table) error { return t.Bet(action, payload.Amount) })
}

// handleSelectCard 选择/取消选择手牌
func (h *Handler) handleSelectCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SelectCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	h.withTable(client, "select_card", func(t *table.Table) error { return t.SelectCard(payload.Index) })
}

// handleUsePower 使用能力
func (h *Handler) handleUsePower(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.UsePowerPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	h.withTable(client, "use_power", func(t *table.Table) error { return t.UsePower(payload.TargetID) })
}

func (h *Handler) handleSkipPower(client types.ClientInterface) {
	h.withTable(client, "skip_power", (*table.Table).SkipPower)
}

func (h *Handler) handleConfirmSwap(client types.ClientInterface) {
	h.withTable(client, "confirm_swap", (*table.Table).ConfirmSwap)
}

func (h *Handler) handleStandPat(client types.ClientInterface) {
	h.withTable(client, "stand_pat", (*table.Table).StandPat)
}
