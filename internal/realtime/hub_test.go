package realtime

import (
	"testing"
	"time"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RoomDeliveryIsScoped(t *testing.T) {
	hub, _ := startHub(t)
	a, b, outsider := newFakeConn("a"), newFakeConn("b"), newFakeConn("c")
	for _, c := range []*fakeConn{a, b, outsider} {
		require.True(t, hub.Register(c))
	}

	require.True(t, hub.JoinRoom(a, "o1_v1"))
	require.True(t, hub.JoinRoom(b, "o1_v1"))

	delivered := hub.SendRoom("o1_v1", []byte(`{"event":"newMessage"}`))

	assert.Equal(t, 2, delivered)
	assert.Equal(t, []string{"newMessage"}, a.eventNames(t))
	assert.Equal(t, []string{"newMessage"}, b.eventNames(t))
	assert.Empty(t, outsider.eventNames(t))
}

func TestHub_SendAllReachesEveryClient(t *testing.T) {
	hub, _ := startHub(t)
	a, b := newFakeConn("a"), newFakeConn("b")
	hub.Register(a)
	hub.Register(b)

	assert.Equal(t, 2, hub.SendAll([]byte(`{"event":"newHelpRequest"}`)))
	assert.Equal(t, 2, hub.Clients())
}

func TestHub_JoinRequiresRegistration(t *testing.T) {
	hub, _ := startHub(t)

	assert.False(t, hub.JoinRoom(newFakeConn("ghost"), "o1_v1"))
	assert.Equal(t, 0, hub.RoomSize("o1_v1"))
}

func TestHub_UnregisterCleansRoomsAndRegistry(t *testing.T) {
	hub, registry := startHub(t)
	a := newFakeConn("a")
	hub.Register(a)
	hub.JoinRoom(a, "o1_v1")
	registry.Announce(models.Victim("v1"), a)

	hub.Unregister(a)

	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, hub.RoomSize("o1_v1"))
	_, ok := registry.Lookup(models.Victim("v1"))
	assert.False(t, ok)
	assert.True(t, a.isClosed())
}

func TestHub_SlowConnectionIsDropped(t *testing.T) {
	hub, registry := startHub(t)
	slow, fast := newFakeConn("slow"), newFakeConn("fast")
	slow.full = true
	hub.Register(slow)
	hub.Register(fast)
	registry.Announce(models.Officer("o1"), slow)

	delivered := hub.SendAll([]byte(`{"event":"newHelpRequest"}`))

	assert.Equal(t, 1, delivered)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)
	_, ok := registry.Lookup(models.Officer("o1"))
	assert.False(t, ok)
}

func TestHub_RegisterAfterStopClosesConn(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub(registry, testLogger())
	close(hub.done)

	c := newFakeConn("late")
	assert.False(t, hub.Register(c))
	assert.True(t, c.isClosed())
}

func TestHub_AnnounceRequiresRegistration(t *testing.T) {
	hub, registry := startHub(t)
	a := newFakeConn("a")
	hub.Register(a)

	assert.True(t, hub.Announce(models.Victim("v1"), a))
	assert.False(t, hub.Announce(models.Officer("o1"), newFakeConn("ghost")))

	_, ok := registry.Lookup(models.Officer("o1"))
	assert.False(t, ok)
	got, ok := registry.Lookup(models.Victim("v1"))
	require.True(t, ok)
	assert.Same(t, a, got)
}
