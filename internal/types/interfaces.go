package types

import (
	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	IsMaintenanceMode() bool
	GetOnlineCount() int
}

// MessageSender 可以接收服务端消息的一端
type MessageSender interface {
	SendMessage(msg *protocol.Message)
}

// ClientInterface 定义客户端接口
type ClientInterface interface {
	MessageSender
	GetID() string
	GetName() string
	Close()
}
