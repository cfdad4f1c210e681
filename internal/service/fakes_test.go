package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/webhook"
)

// fakeHelpRequestRepo - хранилище в памяти с теми же условными переходами, что и SQL
type fakeHelpRequestRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*models.HelpRequest
	names    map[string]string
	clock    time.Time
}

func newFakeHelpRequestRepo(names map[string]string) *fakeHelpRequestRepo {
	return &fakeHelpRequestRepo{
		requests: make(map[uuid.UUID]*models.HelpRequest),
		names:    names,
		clock:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func cloneRequest(r *models.HelpRequest) *models.HelpRequest {
	c := *r
	if r.AssignedOfficerID != nil {
		id := *r.AssignedOfficerID
		c.AssignedOfficerID = &id
	}
	return &c
}

func (f *fakeHelpRequestRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeHelpRequestRepo) Create(_ context.Context, r *models.HelpRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r.ID = uuid.New()
	r.CreatedAt = f.tick()
	r.UpdatedAt = r.CreatedAt
	f.requests[r.ID] = cloneRequest(r)
	return nil
}

func (f *fakeHelpRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("help request %s: %w", id, models.ErrNotFound)
	}
	out := cloneRequest(r)
	out.RequesterName = f.names[r.RequesterID]
	return out, nil
}

func (f *fakeHelpRequestRepo) ListPending(_ context.Context) ([]*models.HelpRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.HelpRequest
	for _, r := range f.requests {
		if r.Status == models.StatusPending && !r.IsAssigned() {
			c := cloneRequest(r)
			c.RequesterName = f.names[r.RequesterID]
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b *models.HelpRequest) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (f *fakeHelpRequestRepo) Assign(_ context.Context, id uuid.UUID, officerID string) (*models.HelpRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("help request %s: %w", id, models.ErrNotFound)
	}
	if r.Status != models.StatusPending || r.IsAssigned() {
		return nil, fmt.Errorf("help request %s is not pending: %w", id, models.ErrConflict)
	}
	r.AssignedOfficerID = &officerID
	r.Status = models.StatusAccepted
	r.UpdatedAt = f.tick()
	return cloneRequest(r), nil
}

func (f *fakeHelpRequestRepo) Release(_ context.Context, id uuid.UUID, from []models.HelpRequestStatus, to models.HelpRequestStatus) (*models.HelpRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.requests[id]
	if !ok {
		return nil, fmt.Errorf("help request %s: %w", id, models.ErrNotFound)
	}
	if !slices.Contains(from, r.Status) {
		return nil, fmt.Errorf("help request %s cannot be released: %w", id, models.ErrConflict)
	}
	r.AssignedOfficerID = nil
	r.Status = to
	r.UpdatedAt = f.tick()
	return cloneRequest(r), nil
}

func (f *fakeHelpRequestRepo) MarkInChat(_ context.Context, officerID, victimID string) ([]*models.HelpRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.HelpRequest
	for _, r := range f.requests {
		if r.Status == models.StatusAccepted && r.AssignedTo(officerID) && r.RequesterID == victimID {
			r.Status = models.StatusInChat
			r.UpdatedAt = f.tick()
			out = append(out, cloneRequest(r))
		}
	}
	return out, nil
}

// fakeChatRepo хранит комнаты в памяти. Дубликаты по ключу можно засеять вручную,
// как это бывает после гонки двух экземпляров сервиса.
type fakeChatRepo struct {
	mu    sync.Mutex
	rooms []*models.ChatRoom
	clock time.Time
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{clock: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeChatRepo) seed(key string, createdAt time.Time, messages ...models.Message) *models.ChatRoom {
	f.mu.Lock()
	defer f.mu.Unlock()

	officerID, victimID, _ := models.ParseRoomKey(key)
	room := &models.ChatRoom{
		ID:        uuid.New(),
		Key:       key,
		OfficerID: officerID,
		VictimID:  victimID,
		CreatedAt: createdAt,
		Messages:  messages,
	}
	f.rooms = append(f.rooms, room)
	return room
}

func (f *fakeChatRepo) CreateRoomIfAbsent(_ context.Context, room *models.ChatRoom) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.rooms {
		if r.Key == room.Key {
			return nil
		}
	}
	f.clock = f.clock.Add(time.Second)
	f.rooms = append(f.rooms, &models.ChatRoom{
		ID:        uuid.New(),
		Key:       room.Key,
		OfficerID: room.OfficerID,
		VictimID:  room.VictimID,
		CreatedAt: f.clock,
	})
	return nil
}

func (f *fakeChatRepo) byKeyLocked(key string) []*models.ChatRoom {
	var out []*models.ChatRoom
	for _, r := range f.rooms {
		if r.Key == key {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b *models.ChatRoom) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

func (f *fakeChatRepo) ListRoomsByKey(_ context.Context, key string) ([]*models.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.ChatRoom
	for _, r := range f.byKeyLocked(key) {
		c := *r
		c.Messages = nil
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeChatRepo) DeleteRooms(_ context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rooms = slices.DeleteFunc(f.rooms, func(r *models.ChatRoom) bool {
		return slices.Contains(ids, r.ID)
	})
	return nil
}

func (f *fakeChatRepo) GetMessages(_ context.Context, roomID uuid.UUID) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.rooms {
		if r.ID == roomID {
			return slices.Clone(r.Messages), nil
		}
	}
	return nil, fmt.Errorf("chat room %s: %w", roomID, models.ErrNotFound)
}

func (f *fakeChatRepo) AppendMessage(_ context.Context, key string, m *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rooms := f.byKeyLocked(key)
	if len(rooms) == 0 {
		return fmt.Errorf("chat room %s: %w", key, models.ErrNotFound)
	}
	room := rooms[0]
	f.clock = f.clock.Add(time.Millisecond)
	m.Seq = int64(len(room.Messages) + 1)
	m.Timestamp = f.clock
	room.Messages = append(room.Messages, *m)
	return nil
}

func (f *fakeChatRepo) roomsByKey(key string) []*models.ChatRoom {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byKeyLocked(key)
}

type fakeParticipants struct {
	victims  map[string]string
	officers map[string]string
}

func (f *fakeParticipants) GetVictim(_ context.Context, id string) (*models.Participant, error) {
	name, ok := f.victims[id]
	if !ok {
		return nil, fmt.Errorf("victim %s: %w", id, models.ErrNotFound)
	}
	return &models.Participant{ID: id, Role: models.RoleVictim, Name: name}, nil
}

func (f *fakeParticipants) GetOfficer(_ context.Context, id string) (*models.Participant, error) {
	name, ok := f.officers[id]
	if !ok {
		return nil, fmt.Errorf("officer %s: %w", id, models.ErrNotFound)
	}
	return &models.Participant{ID: id, Role: models.RoleOfficer, Name: name}, nil
}

// recordingNotifier запоминает уведомления в порядке вызова
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) byEvent(name string) []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []notify.Notification
	for _, n := range r.notifications {
		if n.Event.Name == name {
			out = append(out, n)
		}
	}
	return out
}

// markerFunc адаптирует функцию к InChatMarker
type markerFunc func(ctx context.Context, officerID, victimID string) error

func (f markerFunc) MarkInChat(ctx context.Context, officerID, victimID string) error {
	return f(ctx, officerID, victimID)
}

var noopMarker = markerFunc(func(context.Context, string, string) error { return nil })

var nopDispatch webhook.DispatchPublisher = webhook.NopDispatchPublisher{}
