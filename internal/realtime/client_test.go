package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no list allows all", allowed: nil, origin: "http://evil.example", want: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", want: true},
		{name: "exact match", allowed: []string{"https://app.example.org"}, origin: "https://app.example.org", want: true},
		{name: "case insensitive", allowed: []string{"https://App.Example.org"}, origin: "HTTPS://app.example.ORG", want: true},
		{name: "other host", allowed: []string{"https://app.example.org"}, origin: "https://evil.example", want: false},
		{name: "scheme differs", allowed: []string{"https://app.example.org"}, origin: "http://app.example.org", want: false},
		{name: "missing origin", allowed: []string{"https://app.example.org"}, origin: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(req))
		})
	}
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) receivedEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var e receivedEvent
	require.NoError(t, conn.ReadJSON(&e))
	return e
}

// Полный путь: announce по websocket, затем адресное уведомление доходит до нужного сокета
func TestGateway_TargetedNotificationOverWebsocket(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockChatService(ctrl)
	hub, registry := startHub(t)
	logger := testLogger()
	dispatcher := NewDispatcher(chat, hub, logger)
	broadcaster := NewBroadcaster(hub, registry, logger)

	server := httptest.NewServer(NewGateway(hub, dispatcher, nil, 16, logger))
	defer server.Close()

	victim := dial(t, server)
	officer := dial(t, server)
	require.NoError(t, victim.WriteJSON(map[string]any{"event": EventVictimConnected, "data": "v1"}))
	require.NoError(t, officer.WriteJSON(map[string]any{"event": EventOfficerConnected, "data": "o1"}))

	require.Eventually(t, func() bool { return registry.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	officerID := "o1"
	request := &models.HelpRequest{ID: uuid.New(), RequesterID: "v1", AssignedOfficerID: &officerID}
	broadcaster.Notify(context.Background(), notify.HelpRequestAccepted(request, &models.Participant{ID: "o1", Name: "Officer Rao"}))

	assert.Equal(t, notify.EventHelpRequestAccepted, readEvent(t, victim).Event)
	assert.Equal(t, notify.EventHelpRequestAccepted, readEvent(t, officer).Event)
}

func TestGateway_DisconnectUnregisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub, registry := startHub(t)
	logger := testLogger()
	dispatcher := NewDispatcher(mocks.NewMockChatService(ctrl), hub, logger)

	server := httptest.NewServer(NewGateway(hub, dispatcher, nil, 16, logger))
	defer server.Close()

	conn := dial(t, server)
	require.NoError(t, conn.WriteJSON(map[string]any{"event": EventOfficerConnected, "data": "o1"}))
	require.Eventually(t, func() bool { return registry.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	require.Eventually(t, func() bool { return registry.Len() == 0 && hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestGateway_RejectsForeignOrigin(t *testing.T) {
	hub, _ := startHub(t)
	logger := testLogger()
	dispatcher := NewDispatcher(nil, hub, logger)

	server := httptest.NewServer(NewGateway(hub, dispatcher, []string{"https://app.example.org"}, 16, logger))
	defer server.Close()

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Clients())
}
