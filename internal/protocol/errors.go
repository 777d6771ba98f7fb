package protocol

// 错误码
const (
	ErrCodeUnknown     = 1000
	ErrCodeInvalidMsg  = 1001
	ErrCodeRateLimit   = 1002 // 速率限制
	ErrCodeNoTable     = 2001
	ErrCodeStoreFailed = 2002 // 存储不可用

	// 非法操作
	ErrCodeWrongPhase       = 3001
	ErrCodeNotYourTurn      = 3002
	ErrCodeInvalidAction    = 3003
	ErrCodeCannotCheck      = 3004
	ErrCodeNothingToCall    = 3005
	ErrCodeInvalidAmount    = 3006
	ErrCodeInvalidTarget    = 3007
	ErrCodeInvalidCardIndex = 3008
	ErrCodeSelectionFull    = 3009
	ErrCodeNoSelection      = 3010
	ErrCodePowerUsed        = 3011
	ErrCodePlayerFolded     = 3012
	ErrCodeUnknownPlayer    = 3013

	ErrCodeInsufficientFunds = 4001
	ErrCodeInsufficientCards = 4002

	ErrCodeServerMaintenance = 5003 // 服务器维护中
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "Unknown error",
	ErrCodeInvalidMsg:        "Invalid message format",
	ErrCodeRateLimit:         "Too many requests",
	ErrCodeNoTable:           "No table for this connection",
	ErrCodeStoreFailed:       "Table store unavailable",
	ErrCodeWrongPhase:        "Not allowed in this phase",
	ErrCodeNotYourTurn:       "It's not your turn",
	ErrCodeInvalidAction:     "Invalid action",
	ErrCodeCannotCheck:       "Cannot check while there is a bet",
	ErrCodeNothingToCall:     "Nothing to call",
	ErrCodeInvalidAmount:     "Invalid bet amount",
	ErrCodeInvalidTarget:     "Invalid power target",
	ErrCodeInvalidCardIndex:  "Invalid card index",
	ErrCodeSelectionFull:     "Too many cards selected",
	ErrCodeNoSelection:       "Select at least one card",
	ErrCodePowerUsed:         "Power already used",
	ErrCodePlayerFolded:      "Player has folded",
	ErrCodeUnknownPlayer:     "Unknown player",
	ErrCodeInsufficientFunds: "Not enough chips",
	ErrCodeInsufficientCards: "The deck is exhausted",
	ErrCodeServerMaintenance: "Server under maintenance",
}
