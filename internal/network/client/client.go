package client

import (
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
	"github.com/palemoky/marvel-battle-poker/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// 心跳检测间隔
	heartbeatInterval = 5 * time.Second
	// 最大重连次数
	maxReconnectAttempts = 5
	// 重连间隔
	reconnectInterval = 2 * time.Second
	maxBackoff        = 30 * time.Second
)

var (
	ErrClosed     = errors.New("connection closed")
	ErrBufferFull = errors.New("send buffer full")
	ErrTimeout    = errors.New("receive timeout")
)

// Options 连接参数
type Options struct {
	Name    string       // 玩家名字，为空时使用服务器默认
	TableID string       // 要恢复的牌桌
	Format  codec.Format // 线上编码
}

// Client WebSocket 客户端
type Client struct {
	ServerURL string
	Name      string
	Format    codec.Format

	conn    *websocket.Conn
	send    chan []byte
	receive chan *protocol.Message
	done    chan struct{}

	// 服务器分配的信息
	clientID atomic.Value // string
	tableID  atomic.Value // string

	latency atomic.Int64 // 毫秒

	// 回调
	OnMessage       func(*protocol.Message)
	OnError         func(error)
	OnClose         func()
	OnReconnecting  func(attempt, max int)
	OnReconnect     func()
	OnLatencyUpdate func(int64)

	mu             sync.RWMutex
	closed         bool
	reconnecting   atomic.Bool
	reconnectCount int
	backoff        time.Duration
}

// NewClient 创建客户端，serverURL 形如 ws://host:port/ws
func NewClient(serverURL string, opts Options) *Client {
	c := &Client{
		ServerURL: serverURL,
		Name:      opts.Name,
		Format:    opts.Format,
		send:      make(chan []byte, 256),
		receive:   make(chan *protocol.Message, 256),
		done:      make(chan struct{}),
		backoff:   reconnectInterval,
	}
	c.clientID.Store("")
	c.tableID.Store(opts.TableID)
	return c
}

// ClientID 服务器分配的连接 ID
func (c *Client) ClientID() string {
	id, _ := c.clientID.Load().(string)
	return id
}

// TableID 当前牌桌 ID，连接成功后由服务器告知
func (c *Client) TableID() string {
	id, _ := c.tableID.Load().(string)
	return id
}

// dialURL 拼接查询参数，重连时带上牌桌 ID 以恢复存档
func (c *Client) dialURL() (string, error) {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if c.Name != "" {
		q.Set("name", c.Name)
	}
	if id := c.TableID(); id != "" {
		q.Set("table", id)
	}
	q.Set("format", c.Format.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) dial() (*websocket.Conn, error) {
	target, err := c.dialURL()
	if err != nil {
		return nil, err
	}
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.Dial(target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn, err
}

// Connect 连接服务器
func (c *Client) Connect() error {
	conn, err := c.dial()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	// 启动读写协程
	stop := make(chan struct{})
	go c.readPump(conn, stop)
	go c.writePump(conn, stop)
	return nil
}

// SendMessage 发送消息
func (c *Client) SendMessage(msg *protocol.Message) error {
	data, err := codec.Encode(c.Format, msg)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrBufferFull
	}
}

// Receive 接收消息 (阻塞)
func (c *Client) Receive() (*protocol.Message, error) {
	c.mu.RLock()
	receive, done := c.receive, c.done
	c.mu.RUnlock()

	select {
	case msg := <-receive:
		return msg, nil
	case <-done:
		return nil, ErrClosed
	}
}

// ReceiveWithTimeout 带超时接收消息
func (c *Client) ReceiveWithTimeout(timeout time.Duration) (*protocol.Message, error) {
	c.mu.RLock()
	receive, done := c.receive, c.done
	c.mu.RUnlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case msg := <-receive:
		return msg, nil
	case <-timer.C:
		return nil, ErrTimeout
	case <-done:
		return nil, ErrClosed
	}
}

// Close 关闭连接，不再重连
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}
}

// IsConnected 是否已连接
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.conn != nil
}

// GetLatency 获取当前延迟（毫秒）
func (c *Client) GetLatency() int64 {
	return c.latency.Load()
}

// IsReconnecting 是否正在重连
func (c *Client) IsReconnecting() bool {
	return c.reconnecting.Load()
}
