package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/help_request_system/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// fakeConn копит отправленные кадры в памяти
type fakeConn struct {
	id string

	mu     sync.Mutex
	frames [][]byte
	full   bool
	closed bool
}

func newFakeConn(id string) *fakeConn { return &fakeConn{id: id} }

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.full {
		return false
	}
	c.frames = append(c.frames, data)
	return true
}

func (c *fakeConn) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type receivedEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (c *fakeConn) events(t *testing.T) []receivedEvent {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]receivedEvent, 0, len(c.frames))
	for _, frame := range c.frames {
		var e receivedEvent
		require.NoError(t, json.Unmarshal(frame, &e))
		out = append(out, e)
	}
	return out
}

func (c *fakeConn) eventNames(t *testing.T) []string {
	var names []string
	for _, e := range c.events(t) {
		names = append(names, e.Event)
	}
	return names
}

func testLogger() *logrus.Logger {
	return logger.NewDiscard()
}

// startHub запускает цикл хаба на время теста
func startHub(t *testing.T) (*Hub, *Registry) {
	t.Helper()
	registry := NewRegistry()
	hub := NewHub(registry, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Error("hub did not stop")
		}
	})
	return hub, registry
}
