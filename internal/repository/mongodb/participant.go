package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
)

type participantRepository struct {
	victims  *mongo.Collection
	officers *mongo.Collection
}

func NewParticipantRepository(db *mongo.Database) service.ParticipantRepository {
	return &participantRepository{
		victims:  db.Collection(victimsCollection),
		officers: db.Collection(officersCollection),
	}
}

func (r *participantRepository) GetVictim(ctx context.Context, id string) (*models.Participant, error) {
	return r.get(ctx, r.victims, id, models.RoleVictim)
}

func (r *participantRepository) GetOfficer(ctx context.Context, id string) (*models.Participant, error) {
	return r.get(ctx, r.officers, id, models.RoleOfficer)
}

func (r *participantRepository) get(ctx context.Context, collection *mongo.Collection, id string, role models.Role) (*models.Participant, error) {
	var doc participantDocument
	err := collection.FindOne(ctx, idFilter(id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s with id %s: %w", role, id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", role, err)
	}
	return &models.Participant{
		ID:        id,
		Role:      role,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
	}, nil
}
