// Package notify описывает исходящие уведомления реального времени как значения.
// Сервисы формируют Notification, а доставкой занимается реализация Notifier.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
)

// Имена событий сервер -> клиент
const (
	EventNewHelpRequest      = "newHelpRequest"
	EventHelpRequestAccepted = "helpRequestAccepted"
	EventUpdateHelpRequest   = "updateHelpRequest"
	EventHelpRequestReleased = "helpRequestReleased"
	EventPreviousMessages    = "previousMessages"
	EventNewMessage          = "newMessage"
	EventNewAnonymousSOS     = "newAnonymousSos"
	EventError               = "error"
)

// Mode - способ доставки
type Mode string

const (
	ModeBroadcast Mode = "broadcast"
	ModeTargeted  Mode = "targeted"
	ModeRoom      Mode = "room"
)

// Event - кадр, уходящий клиенту
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data,omitempty"`
}

// Notification - событие вместе с адресацией
type Notification struct {
	Mode    Mode              `json:"mode"`
	Targets []models.Identity `json:"targets,omitempty"`
	Room    string            `json:"room,omitempty"`
	Event   Event             `json:"event"`
}

// Notifier доставляет уведомления. Доставка "fire-and-forget": отсутствие
// получателя не является ошибкой.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type AcceptedPayload struct {
	RequestID uuid.UUID    `json:"requestId"`
	OfficerID string       `json:"officerId"`
	VictimID  string       `json:"victimId"`
	Officer   OfficerLabel `json:"officer"`
}

type OfficerLabel struct {
	Name string `json:"name"`
}

type StatusPayload struct {
	RequestID uuid.UUID                `json:"requestId"`
	Status    models.HelpRequestStatus `json:"status"`
}

type MessagePayload struct {
	Room      string            `json:"room"`
	Sender    models.SenderRole `json:"sender"`
	Text      string            `json:"text"`
	Timestamp time.Time         `json:"timestamp"`
}

type ErrorPayload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// NewHelpRequest - новая заявка, всем подключённым
func NewHelpRequest(r *models.HelpRequest) Notification {
	return Notification{
		Mode:  ModeBroadcast,
		Event: Event{Name: EventNewHelpRequest, Data: r},
	}
}

// HelpRequestAccepted - адресно жертве и принявшему офицеру
func HelpRequestAccepted(r *models.HelpRequest, officer *models.Participant) Notification {
	payload := AcceptedPayload{
		RequestID: r.ID,
		VictimID:  r.RequesterID,
		OfficerID: officer.ID,
		Officer:   OfficerLabel{Name: officer.Name},
	}
	return Notification{
		Mode:    ModeTargeted,
		Targets: []models.Identity{models.Victim(r.RequesterID), models.Officer(officer.ID)},
		Event:   Event{Name: EventHelpRequestAccepted, Data: payload},
	}
}

// HelpRequestReleased - смена статуса при освобождении, всем подключённым
func HelpRequestReleased(r *models.HelpRequest) Notification {
	return Notification{
		Mode:  ModeBroadcast,
		Event: Event{Name: EventHelpRequestReleased, Data: StatusPayload{RequestID: r.ID, Status: r.Status}},
	}
}

// HelpRequestUpdated - прочие смены статуса, всем подключённым
func HelpRequestUpdated(r *models.HelpRequest) Notification {
	return Notification{
		Mode:  ModeBroadcast,
		Event: Event{Name: EventUpdateHelpRequest, Data: StatusPayload{RequestID: r.ID, Status: r.Status}},
	}
}

// NewMessage - новое сообщение всем участникам комнаты
func NewMessage(roomKey string, m models.Message) Notification {
	return Notification{
		Mode: ModeRoom,
		Room: roomKey,
		Event: Event{Name: EventNewMessage, Data: MessagePayload{
			Room:      roomKey,
			Sender:    m.SenderRole,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		}},
	}
}

// NewAnonymousSOS - анонимный сигнал, всем подключённым
func NewAnonymousSOS(s *models.AnonymousSOS) Notification {
	return Notification{
		Mode:  ModeBroadcast,
		Event: Event{Name: EventNewAnonymousSOS, Data: s},
	}
}

// PreviousMessages - история комнаты, отправляется только подключившемуся клиенту
func PreviousMessages(room *models.ChatRoom) Event {
	messages := make([]MessagePayload, 0, len(room.Messages))
	for _, m := range room.Messages {
		messages = append(messages, MessagePayload{Room: room.Key, Sender: m.SenderRole, Text: m.Text, Timestamp: m.Timestamp})
	}
	return Event{Name: EventPreviousMessages, Data: messages}
}

// Error - ответ об ошибке только отправителю входящего события
func Error(inbound string, err error) Event {
	return Event{Name: EventError, Data: ErrorPayload{Event: inbound, Message: err.Error()}}
}
