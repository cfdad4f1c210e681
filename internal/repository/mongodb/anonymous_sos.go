package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type anonymousSOSRepository struct {
	signals *mongo.Collection
}

func NewAnonymousSOSRepository(db *mongo.Database) service.AnonymousSOSRepository {
	return &anonymousSOSRepository{signals: db.Collection(anonymousSOSCollection)}
}

func (r *anonymousSOSRepository) Create(ctx context.Context, sos *models.AnonymousSOS) error {
	sos.ID = uuid.New()
	sos.CreatedAt = time.Now().UTC()

	doc := anonymousSOSDocument{
		ID:        sos.ID.String(),
		Location:  sos.Location,
		CreatedAt: sos.CreatedAt,
	}
	if _, err := r.signals.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create anonymous sos: %w", err)
	}
	return nil
}

func (r *anonymousSOSRepository) ListSince(ctx context.Context, since time.Time) ([]*models.AnonymousSOS, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.signals.Find(ctx, bson.M{"created_at": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list anonymous sos: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []anonymousSOSDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode anonymous sos: %w", err)
	}

	signals := make([]*models.AnonymousSOS, 0, len(docs))
	for _, doc := range docs {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode anonymous sos id %s: %w", doc.ID, err)
		}
		signals = append(signals, &models.AnonymousSOS{ID: id, Location: doc.Location, CreatedAt: doc.CreatedAt})
	}
	return signals, nil
}
