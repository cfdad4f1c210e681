package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

type AnonymousSOSRepository interface {
	Create(ctx context.Context, sos *models.AnonymousSOS) error
	ListSince(ctx context.Context, since time.Time) ([]*models.AnonymousSOS, error)
}

type AnonymousSOSService interface {
	Signal(ctx context.Context, location models.Location) (*models.AnonymousSOS, error)
	ListRecent(ctx context.Context) ([]*models.AnonymousSOS, error)
}

type anonymousSOSService struct {
	repo     AnonymousSOSRepository
	notifier notify.Notifier
	dispatch webhook.DispatchPublisher
	window   time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

func NewAnonymousSOSService(
	repo AnonymousSOSRepository,
	notifier notify.Notifier,
	dispatch webhook.DispatchPublisher,
	window time.Duration,
	logger *logrus.Logger,
) AnonymousSOSService {
	return &anonymousSOSService{
		repo:     repo,
		notifier: notifier,
		dispatch: dispatch,
		window:   window,
		logger:   logger,
		now:      time.Now,
	}
}

// Signal сохраняет анонимный сигнал и оповещает всех подключённых
func (s *anonymousSOSService) Signal(ctx context.Context, location models.Location) (*models.AnonymousSOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "anonymous_sos",
		"method":  "Signal",
	})

	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	sos := &models.AnonymousSOS{Location: location}
	if err := s.repo.Create(ctx, sos); err != nil {
		log.WithError(err).Error("Failed to store anonymous SOS")
		return nil, fmt.Errorf("service: could not store anonymous sos: %w", err)
	}

	log.WithField("sos_id", sos.ID).Info("Anonymous SOS stored")
	s.notifier.Notify(ctx, notify.NewAnonymousSOS(sos))
	if err := s.dispatch.Publish(ctx, webhook.AnonymousSOSEvent(sos)); err != nil {
		log.WithError(err).Warn("Failed to enqueue dispatch webhook")
	}
	return sos, nil
}

// ListRecent возвращает сигналы за последнее окно, новые первыми
func (s *anonymousSOSService) ListRecent(ctx context.Context) ([]*models.AnonymousSOS, error) {
	since := s.now().Add(-s.window)
	signals, err := s.repo.ListSince(ctx, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "anonymous_sos",
			"method":  "ListRecent",
		}).WithError(err).Error("Failed to list anonymous SOS")
		return nil, fmt.Errorf("service: could not list anonymous sos: %w", err)
	}
	return signals, nil
}
