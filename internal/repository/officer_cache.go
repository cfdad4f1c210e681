package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
)

// OfficerCache хранит профили офицеров в Redis; используется с любым хранилищем
type OfficerCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewOfficerCache(redisClient *redis.Client, ttl time.Duration) service.OfficerCache {
	return &OfficerCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func officerCacheKey(id string) string {
	return fmt.Sprintf("officer:%s", id)
}

// GetOfficer пытается получить офицера из Redis
func (c *OfficerCache) GetOfficer(ctx context.Context, id string) (*models.Participant, error) {
	val, err := c.redisClient.Get(ctx, officerCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get officer from cache: %w", err)
	}

	officer := &models.Participant{}
	if err := json.Unmarshal(val, officer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal officer from cache: %w", err)
	}
	return officer, nil
}

// SetOfficer сохраняет офицера в Redis
func (c *OfficerCache) SetOfficer(ctx context.Context, officer *models.Participant) error {
	val, err := json.Marshal(officer)
	if err != nil {
		return fmt.Errorf("failed to marshal officer for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, officerCacheKey(officer.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set officer in cache: %w", err)
	}
	return nil
}
