package realtime

import (
	"context"
	"encoding/json"

	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// Broadcaster доставляет уведомления подключениям этого процесса
type Broadcaster struct {
	hub      *Hub
	registry *Registry
	logger   *logrus.Logger
}

func NewBroadcaster(hub *Hub, registry *Registry, logger *logrus.Logger) *Broadcaster {
	return &Broadcaster{hub: hub, registry: registry, logger: logger}
}

// Notify - доставка "fire-and-forget": отсутствующий получатель пропускается молча
func (b *Broadcaster) Notify(_ context.Context, n notify.Notification) {
	log := b.logger.WithFields(logrus.Fields{
		"component": "broadcaster",
		"event":     n.Event.Name,
		"mode":      n.Mode,
	})

	frame, err := json.Marshal(n.Event)
	if err != nil {
		log.WithError(err).Error("Failed to encode event")
		return
	}

	var delivered int
	switch n.Mode {
	case notify.ModeBroadcast:
		delivered = b.hub.SendAll(frame)
	case notify.ModeRoom:
		delivered = b.hub.SendRoom(n.Room, frame)
	case notify.ModeTargeted:
		seen := make(map[string]struct{}, len(n.Targets))
		for _, target := range n.Targets {
			conn, ok := b.registry.Lookup(target)
			if !ok {
				log.WithField("target", target.String()).Debug("Target not connected, skipping")
				continue
			}
			if _, dup := seen[conn.ID()]; dup {
				continue
			}
			seen[conn.ID()] = struct{}{}
			if b.hub.SendTo(conn, frame) {
				delivered++
			}
		}
	default:
		log.Warn("Unknown delivery mode")
		return
	}

	log.WithField("delivered", delivered).Debug("Event delivered")
}
