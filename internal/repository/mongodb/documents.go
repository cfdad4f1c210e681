package mongodb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	helpRequestsCollection = "help_requests"
	chatRoomsCollection    = "chat_rooms"
	victimsCollection      = "victims"
	officersCollection     = "officers"
	anonymousSOSCollection = "anonymous_sos"
)

type helpRequestDocument struct {
	ID                string          `bson:"_id"`
	RequesterID       string          `bson:"requester_id"`
	Location          models.Location `bson:"location"`
	Status            string          `bson:"status"`
	AssignedOfficerID *string         `bson:"assigned_officer_id"`
	CreatedAt         time.Time       `bson:"created_at"`
	UpdatedAt         time.Time       `bson:"updated_at"`
}

func (d *helpRequestDocument) toModel() (*models.HelpRequest, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &models.HelpRequest{
		ID:                id,
		RequesterID:       d.RequesterID,
		Location:          d.Location,
		Status:            models.HelpRequestStatus(d.Status),
		AssignedOfficerID: d.AssignedOfficerID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}

type chatRoomDocument struct {
	ID           string            `bson:"_id"`
	Key          string            `bson:"room_key"`
	OfficerID    string            `bson:"officer_id"`
	VictimID     string            `bson:"victim_id"`
	CreatedAt    time.Time         `bson:"created_at"`
	MessageCount int64             `bson:"message_count"`
	Messages     []messageDocument `bson:"messages,omitempty"`
}

// messageDocument хранится во вложенном массиве; порядковый номер - позиция в массиве
type messageDocument struct {
	Sender    string    `bson:"sender"`
	Text      string    `bson:"text"`
	Timestamp time.Time `bson:"timestamp"`
}

type participantDocument struct {
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
}

type anonymousSOSDocument struct {
	ID        string          `bson:"_id"`
	Location  models.Location `bson:"location"`
	CreatedAt time.Time       `bson:"created_at"`
}

// idCandidates возвращает строковый id и, если он шестнадцатеричный, его ObjectID:
// участники могли быть заведены с ObjectID в качестве _id
func idCandidates(id string) bson.A {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.A{id, oid}
	}
	return bson.A{id}
}

func idFilter(id string) bson.M {
	return bson.M{"_id": bson.M{"$in": idCandidates(id)}}
}

func stringID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}
