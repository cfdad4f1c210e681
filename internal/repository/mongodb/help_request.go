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

type helpRequestRepository struct {
	requests *mongo.Collection
	victims  *mongo.Collection
}

func NewHelpRequestRepository(db *mongo.Database) service.HelpRequestRepository {
	return &helpRequestRepository{
		requests: db.Collection(helpRequestsCollection),
		victims:  db.Collection(victimsCollection),
	}
}

func (r *helpRequestRepository) Create(ctx context.Context, request *models.HelpRequest) error {
	now := time.Now().UTC()
	request.ID = uuid.New()
	request.CreatedAt = now
	request.UpdatedAt = now

	doc := helpRequestDocument{
		ID:          request.ID.String(),
		RequesterID: request.RequesterID,
		Location:    request.Location,
		Status:      string(request.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.requests.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create help request: %w", err)
	}
	return nil
}

func (r *helpRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	var doc helpRequestDocument
	err := r.requests.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("help request with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get help request: %w", err)
	}
	requests, err := r.withRequesterNames(ctx, []helpRequestDocument{doc})
	if err != nil {
		return nil, err
	}
	return requests[0], nil
}

func (r *helpRequestRepository) ListPending(ctx context.Context) ([]*models.HelpRequest, error) {
	filter := bson.M{
		"status":              string(models.StatusPending),
		"assigned_officer_id": nil,
	}
	cursor, err := r.requests.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending help requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []helpRequestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode pending help requests: %w", err)
	}
	return r.withRequesterNames(ctx, docs)
}

// Assign - условное обновление одного документа, атомарное на стороне MongoDB
func (r *helpRequestRepository) Assign(ctx context.Context, id uuid.UUID, officerID string) (*models.HelpRequest, error) {
	filter := bson.M{
		"_id":                 id.String(),
		"status":              string(models.StatusPending),
		"assigned_officer_id": nil,
	}
	update := bson.M{"$set": bson.M{
		"assigned_officer_id": officerID,
		"status":              string(models.StatusAccepted),
		"updated_at":          time.Now().UTC(),
	}}
	return r.transition(ctx, id, filter, update, "is not pending")
}

func (r *helpRequestRepository) Release(ctx context.Context, id uuid.UUID, from []models.HelpRequestStatus, to models.HelpRequestStatus) (*models.HelpRequest, error) {
	allowed := make(bson.A, len(from))
	for i, status := range from {
		allowed[i] = string(status)
	}
	filter := bson.M{
		"_id":    id.String(),
		"status": bson.M{"$in": allowed},
	}
	update := bson.M{"$set": bson.M{
		"assigned_officer_id": nil,
		"status":              string(to),
		"updated_at":          time.Now().UTC(),
	}}
	return r.transition(ctx, id, filter, update, "cannot be released")
}

// MarkInChat переводит по одному документу за шаг, пока находятся принятые заявки пары
func (r *helpRequestRepository) MarkInChat(ctx context.Context, officerID, victimID string) ([]*models.HelpRequest, error) {
	filter := bson.M{
		"assigned_officer_id": officerID,
		"requester_id":        victimID,
		"status":              string(models.StatusAccepted),
	}
	update := bson.M{"$set": bson.M{
		"status":     string(models.StatusInChat),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var docs []helpRequestDocument
	for {
		var doc helpRequestDocument
		err := r.requests.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to mark help requests as in chat: %w", err)
		}
		docs = append(docs, doc)
	}
	return r.withRequesterNames(ctx, docs)
}

func (r *helpRequestRepository) transition(ctx context.Context, id uuid.UUID, filter, update bson.M, reason string) (*models.HelpRequest, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc helpRequestDocument
	err := r.requests.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to update help request: %w", err)
		}
		count, countErr := r.requests.CountDocuments(ctx, bson.M{"_id": id.String()})
		if countErr != nil {
			return nil, fmt.Errorf("failed to check help request existence: %w", countErr)
		}
		if count == 0 {
			return nil, fmt.Errorf("help request with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("help request with id %s %s: %w", id, reason, models.ErrConflict)
	}

	requests, err := r.withRequesterNames(ctx, []helpRequestDocument{doc})
	if err != nil {
		return nil, err
	}
	return requests[0], nil
}

// withRequesterNames подтягивает имена заявителей одним запросом
func (r *helpRequestRepository) withRequesterNames(ctx context.Context, docs []helpRequestDocument) ([]*models.HelpRequest, error) {
	requests := make([]*models.HelpRequest, 0, len(docs))
	if len(docs) == 0 {
		return requests, nil
	}

	ids := make(bson.A, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, idCandidates(doc.RequesterID)...)
	}
	cursor, err := r.victims.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to load requesters: %w", err)
	}
	defer cursor.Close(ctx)

	names := make(map[string]string, len(docs))
	for cursor.Next(ctx) {
		var victim struct {
			ID   any    `bson:"_id"`
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&victim); err != nil {
			return nil, fmt.Errorf("failed to decode requester: %w", err)
		}
		names[stringID(victim.ID)] = victim.Name
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error requester iteration: %w", err)
	}

	for _, doc := range docs {
		request, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("failed to decode help request %s: %w", doc.ID, err)
		}
		request.RequesterName = names[doc.RequesterID]
		requests = append(requests, request)
	}
	return requests, nil
}
