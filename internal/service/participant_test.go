package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestParticipantService(t *testing.T) (ParticipantService, *mocks.MockParticipantRepository, *mocks.MockOfficerCache) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockParticipantRepository(ctrl)
	cache := mocks.NewMockOfficerCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewParticipantService(repo, cache, logger), repo, cache
}

func TestGetOfficer_CacheHit(t *testing.T) {
	svc, _, cache := newTestParticipantService(t)
	ctx := context.Background()
	officer := &models.Participant{ID: "o1", Role: models.RoleOfficer, Name: "Officer Rao"}

	cache.EXPECT().GetOfficer(ctx, "o1").Return(officer, nil)

	got, err := svc.GetOfficer(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, officer, got)
}

func TestGetOfficer_CacheMissFillsCache(t *testing.T) {
	svc, repo, cache := newTestParticipantService(t)
	ctx := context.Background()
	officer := &models.Participant{ID: "o1", Role: models.RoleOfficer, Name: "Officer Rao"}

	cache.EXPECT().GetOfficer(ctx, "o1").Return(nil, nil)
	repo.EXPECT().GetOfficer(ctx, "o1").Return(officer, nil)
	cache.EXPECT().SetOfficer(ctx, officer).Return(nil)

	got, err := svc.GetOfficer(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "Officer Rao", got.Name)
}

func TestGetOfficer_CacheErrorsAreTolerated(t *testing.T) {
	svc, repo, cache := newTestParticipantService(t)
	ctx := context.Background()
	officer := &models.Participant{ID: "o1", Name: "Officer Rao"}

	cache.EXPECT().GetOfficer(ctx, "o1").Return(nil, fmt.Errorf("redis down"))
	repo.EXPECT().GetOfficer(ctx, "o1").Return(officer, nil)
	cache.EXPECT().SetOfficer(ctx, officer).Return(fmt.Errorf("redis down"))

	got, err := svc.GetOfficer(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, officer, got)
}

func TestGetOfficer_NotFound(t *testing.T) {
	svc, repo, cache := newTestParticipantService(t)
	ctx := context.Background()

	cache.EXPECT().GetOfficer(ctx, "o404").Return(nil, nil)
	repo.EXPECT().GetOfficer(ctx, "o404").Return(nil, fmt.Errorf("officer: %w", models.ErrNotFound))

	_, err := svc.GetOfficer(ctx, "o404")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetVictim(t *testing.T) {
	svc, repo, _ := newTestParticipantService(t)
	ctx := context.Background()

	repo.EXPECT().GetVictim(ctx, "v1").Return(&models.Participant{ID: "v1", Name: "Asha"}, nil)

	got, err := svc.GetVictim(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
}
