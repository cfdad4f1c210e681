package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	"github.com/shenikar/help_request_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// HelpRequestRepository определяет контракт хранилища заявок о помощи.
// Assign и Release обязаны быть атомарными условными обновлениями.
type HelpRequestRepository interface {
	Create(ctx context.Context, request *models.HelpRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error)
	ListPending(ctx context.Context) ([]*models.HelpRequest, error)
	Assign(ctx context.Context, id uuid.UUID, officerID string) (*models.HelpRequest, error)
	Release(ctx context.Context, id uuid.UUID, from []models.HelpRequestStatus, to models.HelpRequestStatus) (*models.HelpRequest, error)
	MarkInChat(ctx context.Context, officerID, victimID string) ([]*models.HelpRequest, error)
}

// HelpRequestService - контроллер жизненного цикла заявки, единственный писатель статуса
type HelpRequestService interface {
	CreateRequest(ctx context.Context, requesterID string, location models.Location) (*models.HelpRequest, error)
	AcceptRequest(ctx context.Context, requestID uuid.UUID, officerID string) (*models.HelpRequest, error)
	ReleaseRequest(ctx context.Context, requestID uuid.UUID) (*models.HelpRequest, error)
	ListPendingRequests(ctx context.Context) ([]*models.HelpRequest, error)
	MarkInChat(ctx context.Context, officerID, victimID string) error
}

type helpRequestService struct {
	repo         HelpRequestRepository
	participants ParticipantService
	notifier     notify.Notifier
	dispatch     webhook.DispatchPublisher
	policy       models.ReleasePolicy
	logger       *logrus.Logger
}

func NewHelpRequestService(
	repo HelpRequestRepository,
	participants ParticipantService,
	notifier notify.Notifier,
	dispatch webhook.DispatchPublisher,
	policy models.ReleasePolicy,
	logger *logrus.Logger,
) HelpRequestService {
	return &helpRequestService{
		repo:         repo,
		participants: participants,
		notifier:     notifier,
		dispatch:     dispatch,
		policy:       policy,
		logger:       logger,
	}
}

// CreateRequest создает заявку в статусе pending и оповещает всех подключённых
func (s *helpRequestService) CreateRequest(ctx context.Context, requesterID string, location models.Location) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "help_request",
		"method":       "CreateRequest",
		"requester_id": requesterID,
	})
	log.Info("Attempting to create a new help request")

	if requesterID == "" {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("requester id is required"))
	}
	if err := location.Validate(); err != nil {
		log.WithError(err).Warn("Rejected help request with invalid location")
		return nil, fmt.Errorf("service: %w", err)
	}

	victim, err := s.participants.GetVictim(ctx, requesterID)
	if err != nil {
		log.WithError(err).Warn("Requester could not be resolved")
		return nil, fmt.Errorf("service: could not resolve requester: %w", err)
	}

	request := &models.HelpRequest{
		RequesterID:   victim.ID,
		RequesterName: victim.Name,
		Location:      location,
		Status:        models.StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create help request in repository")
		return nil, fmt.Errorf("service: could not create help request: %w", err)
	}

	log = log.WithField("request_id", request.ID)
	log.Info("Help request created successfully")

	s.notifier.Notify(ctx, notify.NewHelpRequest(request))
	if err := s.dispatch.Publish(ctx, webhook.HelpRequestEvent(request)); err != nil {
		log.WithError(err).Warn("Failed to enqueue dispatch webhook")
	}
	return request, nil
}

// AcceptRequest закрепляет заявку за офицером. Проигравший гонку получает ErrConflict.
func (s *helpRequestService) AcceptRequest(ctx context.Context, requestID uuid.UUID, officerID string) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "help_request",
		"method":     "AcceptRequest",
		"request_id": requestID,
		"officer_id": officerID,
	})
	log.Info("Attempting to accept help request")

	if officerID == "" {
		return nil, fmt.Errorf("service: %w", models.NewValidationError("officer id is required"))
	}

	officer, err := s.participants.GetOfficer(ctx, officerID)
	if err != nil {
		log.WithError(err).Warn("Officer could not be resolved")
		return nil, fmt.Errorf("service: could not resolve officer: %w", err)
	}

	request, err := s.repo.Assign(ctx, requestID, officer.ID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.WithError(err).Warn("Attempted to accept a non-existent help request")
		case errors.Is(err, models.ErrConflict):
			log.WithError(err).Warn("Help request was already taken")
		default:
			log.WithError(err).Error("Failed to assign help request in repository")
		}
		return nil, fmt.Errorf("service: could not accept help request: %w", err)
	}

	log.Info("Help request accepted successfully")
	s.notifier.Notify(ctx, notify.HelpRequestAccepted(request, officer))
	return request, nil
}

// ReleaseRequest снимает офицера с заявки согласно выбранной политике освобождения
func (s *helpRequestService) ReleaseRequest(ctx context.Context, requestID uuid.UUID) (*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "help_request",
		"method":     "ReleaseRequest",
		"request_id": requestID,
		"policy":     s.policy,
	})
	log.Info("Attempting to release help request")

	request, err := s.repo.Release(ctx, requestID, s.policy.ReleasableFrom(), s.policy.Target())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.WithError(err).Warn("Attempted to release a non-existent help request")
		case errors.Is(err, models.ErrConflict):
			log.WithError(err).Warn("Help request cannot be released from its current status")
		default:
			log.WithError(err).Error("Failed to release help request in repository")
		}
		return nil, fmt.Errorf("service: could not release help request: %w", err)
	}

	log.WithField("status", request.Status).Info("Help request released successfully")
	s.notifier.Notify(ctx, notify.HelpRequestReleased(request))
	return request, nil
}

// ListPendingRequests возвращает все незакреплённые заявки с именем заявителя
func (s *helpRequestService) ListPendingRequests(ctx context.Context) ([]*models.HelpRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "help_request",
		"method":  "ListPendingRequests",
	})
	log.Info("Listing pending help requests")

	requests, err := s.repo.ListPending(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list pending help requests from repository")
		return nil, fmt.Errorf("service: could not list pending help requests: %w", err)
	}

	log.WithField("count", len(requests)).Info("Pending help requests listed successfully")
	return requests, nil
}

// MarkInChat переводит принятые заявки пары офицер-жертва в статус in_chat
func (s *helpRequestService) MarkInChat(ctx context.Context, officerID, victimID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "help_request",
		"method":     "MarkInChat",
		"officer_id": officerID,
		"victim_id":  victimID,
	})

	requests, err := s.repo.MarkInChat(ctx, officerID, victimID)
	if err != nil {
		log.WithError(err).Error("Failed to mark help requests as in chat")
		return fmt.Errorf("service: could not mark help requests as in chat: %w", err)
	}

	for _, request := range requests {
		log.WithField("request_id", request.ID).Info("Help request moved to in_chat")
		s.notifier.Notify(ctx, notify.HelpRequestUpdated(request))
	}
	return nil
}
