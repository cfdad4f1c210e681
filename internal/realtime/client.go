package realtime

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 32 * 1024
)

// FrameHandler обрабатывает входящий кадр подключения
type FrameHandler interface {
	Handle(ctx context.Context, conn Conn, frame []byte)
}

// Client - websocket подключение с раздельными циклами чтения и записи
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, buffer int) *Client {
	return &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, buffer),
	}
}

func (c *Client) ID() string { return c.id }

func (c *Client) Send(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) readPump(ctx context.Context, handler FrameHandler, logger *logrus.Logger) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.WithFields(logrus.Fields{
					"component": "client",
					"conn_id":   c.id,
				}).WithError(err).Warn("Websocket read failed")
			}
			return
		}
		handler.Handle(ctx, c, frame)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// каждый кадр - отдельное текстовое сообщение, клиенты разбирают JSON целиком
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Gateway поднимает websocket подключения и передает их хабу
type Gateway struct {
	hub        *Hub
	handler    FrameHandler
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     *logrus.Logger
}

func NewGateway(hub *Hub, handler FrameHandler, allowedOrigins []string, sendBuffer int, logger *logrus.Logger) *Gateway {
	return &Gateway{
		hub:     hub,
		handler: handler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		sendBuffer: sendBuffer,
		logger:     logger,
	}
}

// ServeHTTP выполняет upgrade; ctx подключения живет, пока жив процесс, а не HTTP запрос
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.WithField("component", "gateway").WithError(err).Warn("Websocket upgrade failed")
		return
	}

	client := newClient(g.hub, conn, g.sendBuffer)
	if !g.hub.Register(client) {
		conn.Close()
		return
	}

	g.logger.WithFields(logrus.Fields{
		"component": "gateway",
		"conn_id":   client.id,
		"remote":    r.RemoteAddr,
	}).Info("Websocket connection opened")

	go client.writePump()
	go client.readPump(context.WithoutCancel(r.Context()), g.handler, g.logger)
}

// originChecker: пустой список или "*" разрешают любой источник, иначе
// сравниваются схема и хост без учёта регистра
func originChecker(allowed []string) func(r *http.Request) bool {
	normalized := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		if n, ok := normalizeOrigin(origin); ok {
			normalized[n] = struct{}{}
		}
	}
	if len(normalized) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return false
		}
		n, ok := normalizeOrigin(origin)
		if !ok {
			return false
		}
		_, allowed := normalized[n]
		return allowed
	}
}

func normalizeOrigin(origin string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}
