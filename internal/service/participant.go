package service

import (
	"context"
	"fmt"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ParticipantRepository - доступ к профилям жертв и офицеров (внешняя CRUD-часть)
type ParticipantRepository interface {
	GetVictim(ctx context.Context, id string) (*models.Participant, error)
	GetOfficer(ctx context.Context, id string) (*models.Participant, error)
}

// OfficerCache - кеш профилей офицеров. Промах возвращает (nil, nil).
type OfficerCache interface {
	GetOfficer(ctx context.Context, id string) (*models.Participant, error)
	SetOfficer(ctx context.Context, officer *models.Participant) error
}

type ParticipantService interface {
	GetVictim(ctx context.Context, id string) (*models.Participant, error)
	GetOfficer(ctx context.Context, id string) (*models.Participant, error)
}

type participantService struct {
	repo   ParticipantRepository
	cache  OfficerCache
	logger *logrus.Logger
}

func NewParticipantService(repo ParticipantRepository, cache OfficerCache, logger *logrus.Logger) ParticipantService {
	return &participantService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// GetVictim получает профиль жертвы
func (s *participantService) GetVictim(ctx context.Context, id string) (*models.Participant, error) {
	victim, err := s.repo.GetVictim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get victim: %w", err)
	}
	return victim, nil
}

// GetOfficer получает профиль офицера, сначала из кеша
func (s *participantService) GetOfficer(ctx context.Context, id string) (*models.Participant, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "participant",
		"method":     "GetOfficer",
		"officer_id": id,
	})

	cached, err := s.cache.GetOfficer(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read officer from cache")
	}
	if cached != nil {
		log.Debug("Officer served from cache")
		return cached, nil
	}

	officer, err := s.repo.GetOfficer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get officer: %w", err)
	}

	if err := s.cache.SetOfficer(ctx, officer); err != nil {
		log.WithError(err).Warn("Failed to cache officer")
	}
	return officer, nil
}
