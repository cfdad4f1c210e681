package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Имена событий клиент -> сервер
const (
	EventVictimConnected  = "victimConnected"
	EventOfficerConnected = "officerConnected"
	EventJoinChat         = "joinChat"
	EventSendMessage      = "sendMessage"
)

// Inbound - входящий кадр
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// SendMessageRequest принимает и старые имена полей chatId/sender/message
type SendMessageRequest struct {
	RoomKey    string `json:"roomKey"`
	SenderRole string `json:"senderRole"`
	Text       string `json:"text"`

	ChatID  string `json:"chatId,omitempty"`
	Sender  string `json:"sender,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r *SendMessageRequest) normalize() {
	if r.RoomKey == "" {
		r.RoomKey = r.ChatID
	}
	if r.SenderRole == "" {
		r.SenderRole = r.Sender
	}
	if r.Text == "" {
		r.Text = r.Message
	}
}

// Dispatcher разбирает входящие события и направляет их в реестр и сервис чата.
// Ошибка события возвращается только отправителю.
type Dispatcher struct {
	chat   service.ChatService
	hub    *Hub
	logger *logrus.Logger
}

func NewDispatcher(chat service.ChatService, hub *Hub, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		chat:   chat,
		hub:    hub,
		logger: logger,
	}
}

var errConnGone = errors.New("connection is no longer registered")

func (d *Dispatcher) Handle(ctx context.Context, conn Conn, frame []byte) {
	var in Inbound
	if err := json.Unmarshal(frame, &in); err != nil {
		d.reply(conn, notify.Error("", models.NewValidationError("malformed frame")))
		return
	}

	log := d.logger.WithFields(logrus.Fields{
		"component": "dispatcher",
		"event":     in.Event,
		"conn_id":   conn.ID(),
	})

	var err error
	switch in.Event {
	case EventVictimConnected:
		err = d.announce(conn, models.RoleVictim, in.Data)
	case EventOfficerConnected:
		err = d.announce(conn, models.RoleOfficer, in.Data)
	case EventJoinChat:
		err = d.joinChat(ctx, conn, in.Data)
	case EventSendMessage:
		err = d.sendMessage(ctx, in.Data)
	default:
		err = models.NewValidationError("unknown event %q", in.Event)
	}

	if err != nil {
		log.WithError(err).Warn("Inbound event failed")
		d.reply(conn, notify.Error(in.Event, clientError(err)))
	}
}

func (d *Dispatcher) announce(conn Conn, role models.Role, data json.RawMessage) error {
	id, err := decodeID(data, "id")
	if err != nil {
		return err
	}
	identity := models.Identity{Role: role, ID: id}
	if !d.hub.Announce(identity, conn) {
		return errConnGone
	}

	d.logger.WithFields(logrus.Fields{
		"component": "dispatcher",
		"identity":  identity.String(),
		"conn_id":   conn.ID(),
	}).Info("Participant announced")
	return nil
}

func (d *Dispatcher) joinChat(ctx context.Context, conn Conn, data json.RawMessage) error {
	key, err := decodeID(data, "pairKey")
	if err != nil {
		return err
	}
	officerID, victimID, err := models.ParseRoomKey(key)
	if err != nil {
		return err
	}

	room, err := d.chat.JoinRoom(ctx, officerID, victimID)
	if err != nil {
		return err
	}
	if !d.hub.JoinRoom(conn, room.Key) {
		return errConnGone
	}
	d.reply(conn, notify.PreviousMessages(room))
	return nil
}

func (d *Dispatcher) sendMessage(ctx context.Context, data json.RawMessage) error {
	var req SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return models.NewValidationError("malformed sendMessage payload")
	}
	req.normalize()

	_, err := d.chat.PostMessage(ctx, req.RoomKey, models.SenderRole(req.SenderRole), req.Text)
	return err
}

func (d *Dispatcher) reply(conn Conn, event notify.Event) {
	frame, err := json.Marshal(event)
	if err != nil {
		d.logger.WithField("component", "dispatcher").WithError(err).Error("Failed to encode reply")
		return
	}
	d.hub.SendTo(conn, frame)
}

// decodeID принимает как голую строку, так и объект с полем field
func decodeID(data json.RawMessage, field string) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if raw = strings.TrimSpace(raw); raw != "" {
			return raw, nil
		}
		return "", models.NewValidationError("%s is required", field)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", models.NewValidationError("malformed payload")
	}
	value, _ := obj[field].(string)
	if value = strings.TrimSpace(value); value == "" {
		return "", models.NewValidationError("%s is required", field)
	}
	return value, nil
}

// clientError скрывает от клиента детали ошибок хранилища
func clientError(err error) error {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrConflict):
		return err
	default:
		return errors.New("internal error")
	}
}
