// Package realtime - доставка событий по websocket: реестр подключений,
// хаб комнат, рассылка уведомлений и разбор входящих событий.
package realtime

import (
	"sync"

	"github.com/shenikar/help_request_system/internal/models"
)

// Conn - одно живое подключение реального времени
type Conn interface {
	ID() string
	// Send ставит кадр в очередь без блокировки; false - очередь переполнена или закрыта
	Send(data []byte) bool
	Close()
}

// Registry сопоставляет личность участника с его текущим подключением
type Registry struct {
	mu    sync.RWMutex
	conns map[models.Identity]Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[models.Identity]Conn)}
}

// Announce записывает подключение личности, перезаписывая прежнее
func (r *Registry) Announce(identity models.Identity, conn Conn) {
	r.mu.Lock()
	r.conns[identity] = conn
	r.mu.Unlock()
}

// Disconnect удаляет только те записи, которые всё ещё указывают на conn.
// Запоздавший disconnect старой вкладки не вытесняет более новое подключение.
func (r *Registry) Disconnect(conn Conn) []models.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []models.Identity
	for identity, current := range r.conns {
		if current == conn {
			delete(r.conns, identity)
			removed = append(removed, identity)
		}
	}
	return removed
}

func (r *Registry) Lookup(identity models.Identity) (Conn, bool) {
	r.mu.RLock()
	conn, ok := r.conns[identity]
	r.mu.RUnlock()
	return conn, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
