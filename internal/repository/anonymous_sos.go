package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
)

type AnonymousSOSRepository struct {
	db *pgxpool.Pool
}

func NewAnonymousSOSRepository(db *pgxpool.Pool) service.AnonymousSOSRepository {
	return &AnonymousSOSRepository{db: db}
}

// Create сохраняет анонимный сигнал
func (r *AnonymousSOSRepository) Create(ctx context.Context, sos *models.AnonymousSOS) error {
	query := `
		INSERT INTO anonymous_sos (latitude, longitude)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, sos.Location.Latitude, sos.Location.Longitude).Scan(&sos.ID, &sos.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create anonymous sos: %w", err)
	}
	return nil
}

// ListSince возвращает сигналы не старше since, новые первыми
func (r *AnonymousSOSRepository) ListSince(ctx context.Context, since time.Time) ([]*models.AnonymousSOS, error) {
	query := `
		SELECT id, latitude, longitude, created_at
		FROM anonymous_sos
		WHERE created_at >= $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list anonymous sos: %w", err)
	}
	defer rows.Close()

	signals := make([]*models.AnonymousSOS, 0)
	for rows.Next() {
		sos := &models.AnonymousSOS{}
		if err := rows.Scan(&sos.ID, &sos.Location.Latitude, &sos.Location.Longitude, &sos.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan anonymous sos row: %w", err)
		}
		signals = append(signals, sos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return signals, nil
}
