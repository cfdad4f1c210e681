package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// RedisFanout публикует уведомления в канал Redis; каждый экземпляр сервиса
// подписан на канал и доставляет их своим подключениям через local.
type RedisFanout struct {
	redis   *redis.Client
	channel string
	local   notify.Notifier
	logger  *logrus.Logger
}

func NewRedisFanout(redisClient *redis.Client, channel string, local notify.Notifier, logger *logrus.Logger) *RedisFanout {
	return &RedisFanout{
		redis:   redisClient,
		channel: channel,
		local:   local,
		logger:  logger,
	}
}

// Notify публикует уведомление. Если Redis недоступен, доставка идет хотя бы локально.
func (f *RedisFanout) Notify(ctx context.Context, n notify.Notification) {
	log := f.logger.WithFields(logrus.Fields{
		"component": "fanout",
		"event":     n.Event.Name,
	})

	payload, err := json.Marshal(n)
	if err != nil {
		log.WithError(err).Error("Failed to encode notification")
		return
	}
	if err := f.redis.Publish(ctx, f.channel, payload).Err(); err != nil {
		log.WithError(err).Warn("Failed to publish notification, delivering locally")
		f.local.Notify(ctx, n)
	}
}

// Run слушает канал до отмены ctx
func (f *RedisFanout) Run(ctx context.Context) {
	log := f.logger.WithFields(logrus.Fields{
		"component": "fanout",
		"channel":   f.channel,
	})

	pubsub := f.redis.Subscribe(ctx, f.channel)
	defer pubsub.Close()

	log.Info("Realtime fan-out subscriber started")
	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("Realtime fan-out subscriber stopped")
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var n notify.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				log.WithError(err).Warn("Dropping malformed notification")
				continue
			}
			f.local.Notify(ctx, n)
		}
	}
}
