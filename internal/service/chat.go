package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/sirupsen/logrus"
)

const maxMessageLength = 4000

// ChatRepository определяет контракт хранилища комнат чата
type ChatRepository interface {
	// CreateRoomIfAbsent создает комнату по ключу, если её ещё нет.
	// При гонке хранилище может оставить дубликаты, их схлопывает JoinRoom.
	CreateRoomIfAbsent(ctx context.Context, room *models.ChatRoom) error
	// ListRoomsByKey возвращает комнаты ключа от самой ранней к поздней, без сообщений
	ListRoomsByKey(ctx context.Context, key string) ([]*models.ChatRoom, error)
	DeleteRooms(ctx context.Context, ids []uuid.UUID) error
	GetMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error)
	// AppendMessage добавляет сообщение в самую раннюю комнату ключа
	AppendMessage(ctx context.Context, key string, message *models.Message) error
}

// InChatMarker - переход заявки в in_chat при входе пары в комнату
type InChatMarker interface {
	MarkInChat(ctx context.Context, officerID, victimID string) error
}

type ChatService interface {
	JoinRoom(ctx context.Context, officerID, victimID string) (*models.ChatRoom, error)
	PostMessage(ctx context.Context, roomKey string, sender models.SenderRole, text string) (*models.Message, error)
}

type chatService struct {
	repo     ChatRepository
	marker   InChatMarker
	notifier notify.Notifier
	logger   *logrus.Logger
	rooms    *keyedMutex
}

func NewChatService(repo ChatRepository, marker InChatMarker, notifier notify.Notifier, logger *logrus.Logger) ChatService {
	return &chatService{
		repo:     repo,
		marker:   marker,
		notifier: notifier,
		logger:   logger,
		rooms:    newKeyedMutex(),
	}
}

// JoinRoom возвращает единственную комнату пары вместе с историей сообщений
func (s *chatService) JoinRoom(ctx context.Context, officerID, victimID string) (*models.ChatRoom, error) {
	key := models.RoomKey(officerID, victimID)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "chat",
		"method":   "JoinRoom",
		"room_key": key,
	})

	if err := models.ValidateRoomPair(officerID, victimID); err != nil {
		log.WithError(err).Warn("Invalid chat pair")
		return nil, fmt.Errorf("service: %w", err)
	}

	unlock := s.rooms.Lock(key)
	defer unlock()

	err := s.repo.CreateRoomIfAbsent(ctx, &models.ChatRoom{
		Key:       key,
		OfficerID: officerID,
		VictimID:  victimID,
	})
	if err != nil {
		log.WithError(err).Error("Failed to create chat room in repository")
		return nil, fmt.Errorf("service: could not create chat room: %w", err)
	}

	rooms, err := s.repo.ListRoomsByKey(ctx, key)
	if err != nil {
		log.WithError(err).Error("Failed to list chat rooms by key")
		return nil, fmt.Errorf("service: could not list chat rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("service: chat room %s vanished after create: %w", key, models.ErrNotFound)
	}

	room := rooms[0]
	if len(rooms) > 1 {
		duplicates := make([]uuid.UUID, 0, len(rooms)-1)
		for _, dup := range rooms[1:] {
			duplicates = append(duplicates, dup.ID)
		}
		log.WithField("duplicates", len(duplicates)).Warn("Collapsing duplicate chat rooms")
		if err := s.repo.DeleteRooms(ctx, duplicates); err != nil {
			log.WithError(err).Error("Failed to delete duplicate chat rooms")
			return nil, fmt.Errorf("service: could not collapse duplicate chat rooms: %w", err)
		}
	}

	messages, err := s.repo.GetMessages(ctx, room.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load chat history")
		return nil, fmt.Errorf("service: could not load chat history: %w", err)
	}
	room.Messages = messages

	if err := s.marker.MarkInChat(ctx, officerID, victimID); err != nil {
		log.WithError(err).Warn("Failed to move help request to in_chat")
	}

	log.WithField("messages", len(messages)).Info("Chat room joined")
	return room, nil
}

// PostMessage добавляет сообщение и рассылает его участникам комнаты
func (s *chatService) PostMessage(ctx context.Context, roomKey string, sender models.SenderRole, text string) (*models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "chat",
		"method":   "PostMessage",
		"room_key": roomKey,
		"sender":   sender,
	})

	if _, _, err := models.ParseRoomKey(roomKey); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if !sender.Valid() {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("unknown sender role %q", sender))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("message text is empty"))
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("message text exceeds %d characters", maxMessageLength))
	}

	// Рассылка под тем же замком, что и запись: порядок доставки совпадает с порядком добавления.
	unlock := s.rooms.Lock(roomKey)
	defer unlock()

	message := &models.Message{SenderRole: sender, Text: text}
	if err := s.repo.AppendMessage(ctx, roomKey, message); err != nil {
		log.WithError(err).Warn("Failed to append chat message")
		return nil, fmt.Errorf("service: could not post message: %w", err)
	}

	s.notifier.Notify(ctx, notify.NewMessage(roomKey, *message))
	log.WithField("seq", message.Seq).Debug("Chat message posted")
	return message, nil
}
