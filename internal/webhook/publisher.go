package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/help_request_system/internal/models"
)

const (
	dispatchQueueKey = "dispatch_webhook_events"

	KindHelpRequest  = "help_request"
	KindAnonymousSOS = "anonymous_sos"
)

// DispatchEvent - сигнал бедствия для внешнего диспетчерского центра
type DispatchEvent struct {
	Kind        string    `json:"kind"`
	ID          uuid.UUID `json:"id"`
	RequesterID string    `json:"requester_id,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Timestamp   time.Time `json:"timestamp"`
}

// HelpRequestEvent строит событие для новой заявки о помощи
func HelpRequestEvent(r *models.HelpRequest) DispatchEvent {
	return DispatchEvent{
		Kind:        KindHelpRequest,
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Latitude:    r.Location.Latitude,
		Longitude:   r.Location.Longitude,
		Timestamp:   r.CreatedAt,
	}
}

// AnonymousSOSEvent строит событие для анонимного сигнала
func AnonymousSOSEvent(s *models.AnonymousSOS) DispatchEvent {
	return DispatchEvent{
		Kind:      KindAnonymousSOS,
		ID:        s.ID,
		Latitude:  s.Location.Latitude,
		Longitude: s.Location.Longitude,
		Timestamp: s.CreatedAt,
	}
}

// DispatchPublisher - интерфейс для публикации вебхуков
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher, использующая Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

// NewRedisDispatchPublisher создает новый RedisDispatchPublisher
func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}

// NopDispatchPublisher используется, когда WEBHOOK_URL не задан
type NopDispatchPublisher struct{}

func (NopDispatchPublisher) Publish(context.Context, DispatchEvent) error { return nil }
