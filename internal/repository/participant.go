package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
)

type ParticipantRepository struct {
	db *pgxpool.Pool
}

func NewParticipantRepository(db *pgxpool.Pool) service.ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) GetVictim(ctx context.Context, id string) (*models.Participant, error) {
	return r.get(ctx, `SELECT id, name, created_at FROM victims WHERE id = $1;`, id, models.RoleVictim)
}

func (r *ParticipantRepository) GetOfficer(ctx context.Context, id string) (*models.Participant, error) {
	return r.get(ctx, `SELECT id, name, created_at FROM officers WHERE id = $1;`, id, models.RoleOfficer)
}

func (r *ParticipantRepository) get(ctx context.Context, query, id string, role models.Role) (*models.Participant, error) {
	p := &models.Participant{Role: role}
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s with id %s: %w", role, id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", role, err)
	}
	return p, nil
}
