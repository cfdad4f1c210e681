package realtime

import (
	"context"
	"sync"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Hub владеет множеством подключений и членством в комнатах чата.
// Регистрация и отключение проходят через цикл Run.
type Hub struct {
	registry *Registry
	logger   *logrus.Logger

	register   chan registration
	unregister chan Conn
	done       chan struct{}

	mu      sync.RWMutex
	clients map[Conn]map[string]struct{}
	rooms   map[string]map[Conn]struct{}
}

func NewHub(registry *Registry, logger *logrus.Logger) *Hub {
	return &Hub{
		registry:   registry,
		logger:     logger,
		register:   make(chan registration),
		unregister: make(chan Conn),
		done:       make(chan struct{}),
		clients:    make(map[Conn]map[string]struct{}),
		rooms:      make(map[string]map[Conn]struct{}),
	}
}

// Run обрабатывает регистрацию и отключение до отмены ctx, затем закрывает все подключения
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case reg := <-h.register:
			h.registerConn(reg.conn)
			close(reg.ack)
		case conn := <-h.unregister:
			h.unregisterConn(conn)
		}
	}
}

type registration struct {
	conn Conn
	ack  chan struct{}
}

// Register возвращается, когда подключение уже учтено хабом
func (h *Hub) Register(conn Conn) bool {
	reg := registration{conn: conn, ack: make(chan struct{})}
	select {
	case h.register <- reg:
		<-reg.ack
		return true
	case <-h.done:
		conn.Close()
		return false
	}
}

func (h *Hub) Unregister(conn Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) registerConn(conn Conn) {
	h.mu.Lock()
	h.clients[conn] = make(map[string]struct{})
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"component": "hub",
		"conn_id":   conn.ID(),
		"clients":   total,
	}).Debug("Connection registered")
}

func (h *Hub) unregisterConn(conn Conn) {
	h.mu.Lock()
	rooms, ok := h.clients[conn]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, conn)
	for room := range rooms {
		h.leaveLocked(conn, room)
	}
	// под тем же замком, что и Announce: снятое подключение не может быть объявлено заново
	removed := h.registry.Disconnect(conn)
	h.mu.Unlock()

	conn.Close()
	h.logger.WithFields(logrus.Fields{
		"component":  "hub",
		"conn_id":    conn.ID(),
		"identities": len(removed),
	}).Debug("Connection unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := make([]Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.clients = make(map[Conn]map[string]struct{})
	h.rooms = make(map[string]map[Conn]struct{})
	for _, conn := range conns {
		h.registry.Disconnect(conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
}

// Announce связывает личность с подключением, только пока хаб его учитывает.
// false - подключение уже снято и в реестр не попадает.
func (h *Hub) Announce(identity models.Identity, conn Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; !ok {
		return false
	}
	h.registry.Announce(identity, conn)
	return true
}

// JoinRoom добавляет зарегистрированное подключение в комнату
func (h *Hub) JoinRoom(conn Conn, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	memberships, ok := h.clients[conn]
	if !ok {
		return false
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[Conn]struct{})
	}
	h.rooms[room][conn] = struct{}{}
	memberships[room] = struct{}{}
	return true
}

func (h *Hub) LeaveRoom(conn Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if memberships, ok := h.clients[conn]; ok {
		delete(memberships, room)
	}
	h.leaveLocked(conn, room)
}

func (h *Hub) leaveLocked(conn Conn, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, conn)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// SendAll отправляет кадр всем подключённым
func (h *Hub) SendAll(data []byte) int {
	h.mu.RLock()
	conns := make([]Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	return h.deliver(conns, data)
}

// SendRoom отправляет кадр участникам комнаты
func (h *Hub) SendRoom(room string, data []byte) int {
	h.mu.RLock()
	members := h.rooms[room]
	conns := make([]Conn, 0, len(members))
	for conn := range members {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	return h.deliver(conns, data)
}

// SendTo отправляет кадр одному подключению
func (h *Hub) SendTo(conn Conn, data []byte) bool {
	return h.deliver([]Conn{conn}, data) == 1
}

// deliver не блокируется: медленный клиент с переполненной очередью отключается
func (h *Hub) deliver(conns []Conn, data []byte) int {
	delivered := 0
	for _, conn := range conns {
		if conn.Send(data) {
			delivered++
			continue
		}
		h.logger.WithFields(logrus.Fields{
			"component": "hub",
			"conn_id":   conn.ID(),
		}).Warn("Dropping slow connection")
		conn.Close()
		go h.Unregister(conn)
	}
	return delivered
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
