package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) service.ChatRepository {
	return &ChatRepository{db: db}
}

// CreateRoomIfAbsent создает комнату; уникальный индекс по room_key делает вставку идемпотентной
func (r *ChatRepository) CreateRoomIfAbsent(ctx context.Context, room *models.ChatRoom) error {
	query := `
		INSERT INTO chat_rooms (room_key, officer_id, victim_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_key) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, room.Key, room.OfficerID, room.VictimID); err != nil {
		return fmt.Errorf("failed to create chat room: %w", err)
	}
	return nil
}

// ListRoomsByKey возвращает комнаты ключа, самые ранние первыми
func (r *ChatRepository) ListRoomsByKey(ctx context.Context, key string) ([]*models.ChatRoom, error) {
	query := `
		SELECT id, room_key, officer_id, victim_id, created_at
		FROM chat_rooms
		WHERE room_key = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]*models.ChatRoom, 0, 1)
	for rows.Next() {
		room := &models.ChatRoom{}
		if err := rows.Scan(&room.ID, &room.Key, &room.OfficerID, &room.VictimID, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return rooms, nil
}

// DeleteRooms удаляет комнаты; сообщения удаляются каскадно
func (r *ChatRepository) DeleteRooms(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_rooms WHERE id = ANY($1::uuid[]);`, raw); err != nil {
		return fmt.Errorf("failed to delete chat rooms: %w", err)
	}
	return nil
}

// GetMessages возвращает историю комнаты в порядке добавления
func (r *ChatRepository) GetMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	query := `
		SELECT seq, sender_role, body, created_at
		FROM chat_messages
		WHERE room_id = $1
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		var sender string
		if err := rows.Scan(&m.Seq, &sender, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message row: %w", err)
		}
		m.SenderRole = models.SenderRole(sender)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return messages, nil
}

// AppendMessage добавляет сообщение в самую раннюю комнату с ключом key
func (r *ChatRepository) AppendMessage(ctx context.Context, key string, message *models.Message) error {
	query := `
		INSERT INTO chat_messages (room_id, sender_role, body)
		SELECT id, $2, $3
		FROM chat_rooms
		WHERE room_key = $1
		ORDER BY created_at, id
		LIMIT 1
		RETURNING seq, created_at;
	`
	err := r.db.QueryRow(ctx, query, key, string(message.SenderRole), message.Text).Scan(&message.Seq, &message.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("chat room %s: %w", key, models.ErrNotFound)
		}
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}
