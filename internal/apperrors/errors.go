package apperrors

import (
	"errors"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// GameError 游戏错误（会话与服务端共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newErr(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// 预定义错误
var (
	ErrWrongPhase       = newErr(protocol.ErrCodeWrongPhase)
	ErrNotYourTurn      = newErr(protocol.ErrCodeNotYourTurn)
	ErrInvalidAction    = newErr(protocol.ErrCodeInvalidAction)
	ErrCannotCheck      = newErr(protocol.ErrCodeCannotCheck)
	ErrNothingToCall    = newErr(protocol.ErrCodeNothingToCall)
	ErrInvalidAmount    = newErr(protocol.ErrCodeInvalidAmount)
	ErrInvalidTarget    = newErr(protocol.ErrCodeInvalidTarget)
	ErrInvalidCardIndex = newErr(protocol.ErrCodeInvalidCardIndex)
	ErrSelectionFull    = newErr(protocol.ErrCodeSelectionFull)
	ErrNoSelection      = newErr(protocol.ErrCodeNoSelection)
	ErrPowerUsed        = newErr(protocol.ErrCodePowerUsed)
	ErrPlayerFolded     = newErr(protocol.ErrCodePlayerFolded)
	ErrUnknownPlayer    = newErr(protocol.ErrCodeUnknownPlayer)

	ErrInsufficientFunds = newErr(protocol.ErrCodeInsufficientFunds)
	ErrInsufficientCards = newErr(protocol.ErrCodeInsufficientCards)

	ErrNoTable = newErr(protocol.ErrCodeNoTable)
)

// Code 返回错误链中 GameError 的错误码，没有时返回 ErrCodeUnknown
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return protocol.ErrCodeUnknown
}
