package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/notify"
	notify_mocks "github.com/shenikar/help_request_system/internal/notify/mocks"
	"github.com/shenikar/help_request_system/internal/service/mocks"
	"github.com/shenikar/help_request_system/internal/webhook"
	webhook_mocks "github.com/shenikar/help_request_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type helpRequestMocks struct {
	repo         *mocks.MockHelpRequestRepository
	participants *mocks.MockParticipantService
	notifier     *notify_mocks.MockNotifier
	dispatch     *webhook_mocks.MockDispatchPublisher
}

// newTestHelpRequestService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestHelpRequestService(t *testing.T, policy models.ReleasePolicy) (*helpRequestService, helpRequestMocks) {
	ctrl := gomock.NewController(t)
	m := helpRequestMocks{
		repo:         mocks.NewMockHelpRequestRepository(ctrl),
		participants: mocks.NewMockParticipantService(ctrl),
		notifier:     notify_mocks.NewMockNotifier(ctrl),
		dispatch:     webhook_mocks.NewMockDispatchPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewHelpRequestService(m.repo, m.participants, m.notifier, m.dispatch, policy, logger).(*helpRequestService)
	return svc, m
}

func strPtr(s string) *string { return &s }

func TestCreateRequest_Success(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	loc := models.Location{Latitude: 12.9, Longitude: 77.6}
	requestID := uuid.New()

	m.participants.EXPECT().GetVictim(ctx, "v1").Return(&models.Participant{ID: "v1", Role: models.RoleVictim, Name: "Asha"}, nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.HelpRequest) error {
		assert.Equal(t, models.StatusPending, r.Status)
		assert.Nil(t, r.AssignedOfficerID)
		r.ID = requestID
		return nil
	})
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
		assert.Equal(t, notify.ModeBroadcast, n.Mode)
		assert.Equal(t, notify.EventNewHelpRequest, n.Event.Name)
	})
	m.dispatch.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.DispatchEvent) error {
		assert.Equal(t, webhook.KindHelpRequest, e.Kind)
		assert.Equal(t, requestID, e.ID)
		return nil
	})

	request, err := svc.CreateRequest(ctx, "v1", loc)
	require.NoError(t, err)
	assert.Equal(t, requestID, request.ID)
	assert.Equal(t, "Asha", request.RequesterName)
	assert.Equal(t, loc, request.Location)
}

func TestCreateRequest_InvalidLocation(t *testing.T) {
	svc, _ := newTestHelpRequestService(t, models.ReleaseResolve)

	_, err := svc.CreateRequest(context.Background(), "v1", models.Location{Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequest_MissingRequester(t *testing.T) {
	svc, _ := newTestHelpRequestService(t, models.ReleaseResolve)

	_, err := svc.CreateRequest(context.Background(), "", models.Location{})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequest_UnknownVictim(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()

	m.participants.EXPECT().GetVictim(ctx, "ghost").Return(nil, fmt.Errorf("victim: %w", models.ErrNotFound))

	_, err := svc.CreateRequest(ctx, "ghost", models.Location{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateRequest_DispatchFailureIsNotFatal(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()

	m.participants.EXPECT().GetVictim(ctx, "v1").Return(&models.Participant{ID: "v1", Name: "Asha"}, nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any())
	m.dispatch.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down"))

	_, err := svc.CreateRequest(ctx, "v1", models.Location{Latitude: 1, Longitude: 1})
	assert.NoError(t, err)
}

func TestCreateRequest_RepositoryError(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()

	m.participants.EXPECT().GetVictim(ctx, "v1").Return(&models.Participant{ID: "v1"}, nil)
	m.repo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("db error"))

	_, err := svc.CreateRequest(ctx, "v1", models.Location{Latitude: 1, Longitude: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestAcceptRequest_NotifiesVictimAndOfficerOnly(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	requestID := uuid.New()
	officer := &models.Participant{ID: "o1", Role: models.RoleOfficer, Name: "Officer Rao"}
	accepted := &models.HelpRequest{
		ID:                requestID,
		RequesterID:       "v1",
		Status:            models.StatusAccepted,
		AssignedOfficerID: strPtr("o1"),
	}

	m.participants.EXPECT().GetOfficer(ctx, "o1").Return(officer, nil)
	m.repo.EXPECT().Assign(ctx, requestID, "o1").Return(accepted, nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
		assert.Equal(t, notify.ModeTargeted, n.Mode)
		assert.Equal(t, notify.EventHelpRequestAccepted, n.Event.Name)
		assert.ElementsMatch(t, []models.Identity{models.Victim("v1"), models.Officer("o1")}, n.Targets)

		payload, ok := n.Event.Data.(notify.AcceptedPayload)
		require.True(t, ok)
		assert.Equal(t, requestID, payload.RequestID)
		assert.Equal(t, "o1", payload.OfficerID)
		assert.Equal(t, "Officer Rao", payload.Officer.Name)
	})

	request, err := svc.AcceptRequest(ctx, requestID, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, request.Status)
}

func TestAcceptRequest_Conflict(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	requestID := uuid.New()

	m.participants.EXPECT().GetOfficer(ctx, "o2").Return(&models.Participant{ID: "o2"}, nil)
	m.repo.EXPECT().Assign(ctx, requestID, "o2").Return(nil, fmt.Errorf("taken: %w", models.ErrConflict))

	_, err := svc.AcceptRequest(ctx, requestID, "o2")
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAcceptRequest_UnknownOfficer(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()

	m.participants.EXPECT().GetOfficer(ctx, "nobody").Return(nil, fmt.Errorf("officer: %w", models.ErrNotFound))

	_, err := svc.AcceptRequest(ctx, uuid.New(), "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReleaseRequest_UsesPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy models.ReleasePolicy
		from   []models.HelpRequestStatus
		to     models.HelpRequestStatus
	}{
		{
			name:   "resolve",
			policy: models.ReleaseResolve,
			from:   []models.HelpRequestStatus{models.StatusPending, models.StatusAccepted, models.StatusInChat},
			to:     models.StatusResolved,
		},
		{
			name:   "requeue",
			policy: models.ReleaseRequeue,
			from:   []models.HelpRequestStatus{models.StatusAccepted, models.StatusInChat},
			to:     models.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestHelpRequestService(t, tt.policy)
			ctx := context.Background()
			requestID := uuid.New()
			released := &models.HelpRequest{ID: requestID, RequesterID: "v1", Status: tt.to}

			m.repo.EXPECT().Release(ctx, requestID, tt.from, tt.to).Return(released, nil)
			m.notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
				assert.Equal(t, notify.ModeBroadcast, n.Mode)
				assert.Equal(t, notify.EventHelpRequestReleased, n.Event.Name)
				assert.Equal(t, notify.StatusPayload{RequestID: requestID, Status: tt.to}, n.Event.Data)
			})

			request, err := svc.ReleaseRequest(ctx, requestID)
			require.NoError(t, err)
			assert.Equal(t, tt.to, request.Status)
			assert.Nil(t, request.AssignedOfficerID)
		})
	}
}

func TestReleaseRequest_NotFound(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	requestID := uuid.New()

	m.repo.EXPECT().Release(ctx, requestID, gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("missing: %w", models.ErrNotFound))

	_, err := svc.ReleaseRequest(ctx, requestID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListPendingRequests(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	pending := []*models.HelpRequest{
		{ID: uuid.New(), RequesterID: "v1", RequesterName: "Asha", Status: models.StatusPending},
		{ID: uuid.New(), RequesterID: "v2", RequesterName: "Meera", Status: models.StatusPending},
	}

	m.repo.EXPECT().ListPending(ctx).Return(pending, nil)

	requests, err := svc.ListPendingRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, requests)
}

func TestMarkInChat_BroadcastsEachTransition(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()
	moved := []*models.HelpRequest{
		{ID: uuid.New(), RequesterID: "v1", Status: models.StatusInChat, AssignedOfficerID: strPtr("o1")},
	}

	m.repo.EXPECT().MarkInChat(ctx, "o1", "v1").Return(moved, nil)
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
		assert.Equal(t, notify.EventUpdateHelpRequest, n.Event.Name)
		assert.Equal(t, notify.StatusPayload{RequestID: moved[0].ID, Status: models.StatusInChat}, n.Event.Data)
	})

	require.NoError(t, svc.MarkInChat(ctx, "o1", "v1"))
}

func TestMarkInChat_NothingToMove(t *testing.T) {
	svc, m := newTestHelpRequestService(t, models.ReleaseResolve)
	ctx := context.Background()

	m.repo.EXPECT().MarkInChat(ctx, "o1", "v1").Return(nil, nil)

	require.NoError(t, svc.MarkInChat(ctx, "o1", "v1"))
}
