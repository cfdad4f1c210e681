package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type chatRepository struct {
	rooms *mongo.Collection
}

func NewChatRepository(db *mongo.Database) service.ChatRepository {
	return &chatRepository{rooms: db.Collection(chatRoomsCollection)}
}

var earliestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// CreateRoomIfAbsent - upsert по room_key. Без уникального индекса параллельные
// upsert могут вставить два документа, лишние удаляет JoinRoom.
func (r *chatRepository) CreateRoomIfAbsent(ctx context.Context, room *models.ChatRoom) error {
	opts := options.Update().SetUpsert(true)
	if _, err := r.rooms.UpdateOne(ctx, bson.M{"room_key": room.Key}, createRoomPipeline(room, uuid.New()), opts); err != nil {
		return fmt.Errorf("failed to create chat room: %w", err)
	}
	return nil
}

// createRoomPipeline заполняет только отсутствующие поля. created_at берётся
// из часов сервера ($$NOW), чтобы порядок комнат не зависел от часов инстансов.
func createRoomPipeline(room *models.ChatRoom, id uuid.UUID) mongo.Pipeline {
	keep := func(field string, value any) bson.E {
		return bson.E{Key: field, Value: bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, value}}}}
	}
	literal := func(value any) bson.D {
		return bson.D{{Key: "$literal", Value: value}}
	}
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			keep("_id", literal(id.String())),
			keep("officer_id", literal(room.OfficerID)),
			keep("victim_id", literal(room.VictimID)),
			keep("created_at", "$$NOW"),
			keep("message_count", int64(0)),
			keep("messages", literal(bson.A{})),
		}}},
	}
}

func (r *chatRepository) ListRoomsByKey(ctx context.Context, key string) ([]*models.ChatRoom, error) {
	opts := options.Find().
		SetSort(earliestFirst).
		SetProjection(bson.M{"messages": 0})
	cursor, err := r.rooms.Find(ctx, bson.M{"room_key": key}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := make([]*models.ChatRoom, 0, 1)
	for cursor.Next(ctx) {
		var doc chatRoomDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode chat room: %w", err)
		}
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode chat room id %s: %w", doc.ID, err)
		}
		rooms = append(rooms, &models.ChatRoom{
			ID:        id,
			Key:       doc.Key,
			OfficerID: doc.OfficerID,
			VictimID:  doc.VictimID,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return rooms, nil
}

func (r *chatRepository) DeleteRooms(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make(bson.A, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	if _, err := r.rooms.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": raw}}); err != nil {
		return fmt.Errorf("failed to delete chat rooms: %w", err)
	}
	return nil
}

func (r *chatRepository) GetMessages(ctx context.Context, roomID uuid.UUID) ([]models.Message, error) {
	var doc chatRoomDocument
	opts := options.FindOne().SetProjection(bson.M{"messages": 1})
	err := r.rooms.FindOne(ctx, bson.M{"_id": roomID.String()}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("chat room %s: %w", roomID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}

	messages := make([]models.Message, len(doc.Messages))
	for i, m := range doc.Messages {
		messages[i] = models.Message{
			Seq:        int64(i + 1),
			SenderRole: models.SenderRole(m.Sender),
			Text:       m.Text,
			Timestamp:  m.Timestamp,
		}
	}
	return messages, nil
}

// AppendMessage дописывает сообщение в самую раннюю комнату ключа. $push и $inc
// применяются к документу атомарно, поэтому message_count после обновления
// совпадает с позицией сообщения в массиве.
func (r *chatRepository) AppendMessage(ctx context.Context, key string, message *models.Message) error {
	message.Timestamp = time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$push": bson.M{"messages": messageDocument{
			Sender:    string(message.SenderRole),
			Text:      message.Text,
			Timestamp: message.Timestamp,
		}},
		"$inc": bson.M{"message_count": 1},
	}
	opts := options.FindOneAndUpdate().
		SetSort(earliestFirst).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"message_count": 1})

	var doc chatRoomDocument
	err := r.rooms.FindOneAndUpdate(ctx, bson.M{"room_key": key}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("chat room %s: %w", key, models.ErrNotFound)
		}
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	message.Seq = doc.MessageCount
	return nil
}
