package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

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

func newTestAnonymousSOSService(t *testing.T) (*anonymousSOSService, *mocks.MockAnonymousSOSRepository, *notify_mocks.MockNotifier, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAnonymousSOSRepository(ctrl)
	notifier := notify_mocks.NewMockNotifier(ctrl)
	dispatch := webhook_mocks.NewMockDispatchPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAnonymousSOSService(repo, notifier, dispatch, 24*time.Hour, logger).(*anonymousSOSService)
	return svc, repo, notifier, dispatch
}

func TestSignal_StoresAndBroadcasts(t *testing.T) {
	svc, repo, notifier, dispatch := newTestAnonymousSOSService(t)
	ctx := context.Background()
	id := uuid.New()
	loc := models.Location{Latitude: 28.6, Longitude: 77.2}

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, sos *models.AnonymousSOS) error {
		assert.Equal(t, loc, sos.Location)
		sos.ID = id
		return nil
	})
	notifier.EXPECT().Notify(ctx, gomock.Any()).Do(func(_ context.Context, n notify.Notification) {
		assert.Equal(t, notify.ModeBroadcast, n.Mode)
		assert.Equal(t, notify.EventNewAnonymousSOS, n.Event.Name)
	})
	dispatch.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.DispatchEvent) error {
		assert.Equal(t, webhook.KindAnonymousSOS, e.Kind)
		assert.Equal(t, id, e.ID)
		return nil
	})

	sos, err := svc.Signal(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, id, sos.ID)
}

func TestSignal_InvalidLocation(t *testing.T) {
	svc, _, _, _ := newTestAnonymousSOSService(t)

	_, err := svc.Signal(context.Background(), models.Location{Latitude: 0, Longitude: 200})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListRecent_UsesWindow(t *testing.T) {
	svc, repo, _, _ := newTestAnonymousSOSService(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	signals := []*models.AnonymousSOS{{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}}

	repo.EXPECT().ListSince(ctx, now.Add(-24*time.Hour)).Return(signals, nil)

	got, err := svc.ListRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, signals, got)
}

func TestListRecent_RepositoryError(t *testing.T) {
	svc, repo, _, _ := newTestAnonymousSOSService(t)
	ctx := context.Background()

	repo.EXPECT().ListSince(ctx, gomock.Any()).Return(nil, fmt.Errorf("db error"))

	_, err := svc.ListRecent(ctx)
	assert.Error(t, err)
}
