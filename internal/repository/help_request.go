package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/help_request_system/internal/models"
	"github.com/shenikar/help_request_system/internal/service"
)

// helpRequestColumns - выборка заявки вместе с именем заявителя; u - строки help_requests
const helpRequestColumns = `
	u.id,
	u.requester_id,
	COALESCE(v.name, ''),
	u.latitude,
	u.longitude,
	u.status,
	u.assigned_officer_id,
	u.created_at,
	u.updated_at`

type HelpRequestRepository struct {
	db *pgxpool.Pool
}

func NewHelpRequestRepository(db *pgxpool.Pool) service.HelpRequestRepository {
	return &HelpRequestRepository{db: db}
}

// Create создает новую заявку в статусе pending
func (r *HelpRequestRepository) Create(ctx context.Context, request *models.HelpRequest) error {
	query := `
		INSERT INTO help_requests (requester_id, latitude, longitude, status)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		request.RequesterID,
		request.Location.Latitude,
		request.Location.Longitude,
		string(request.Status),
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create help request: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по её UUID
func (r *HelpRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HelpRequest, error) {
	query := `
		SELECT` + helpRequestColumns + `
		FROM help_requests u
		LEFT JOIN victims v ON v.id = u.requester_id
		WHERE u.id = $1;
	`
	request, err := scanHelpRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("help request with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get help request by id: %w", err)
	}
	return request, nil
}

// ListPending возвращает все незакреплённые заявки, старые первыми
func (r *HelpRequestRepository) ListPending(ctx context.Context) ([]*models.HelpRequest, error) {
	query := `
		SELECT` + helpRequestColumns + `
		FROM help_requests u
		LEFT JOIN victims v ON v.id = u.requester_id
		WHERE u.status = 'pending' AND u.assigned_officer_id IS NULL
		ORDER BY u.created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending help requests: %w", err)
	}
	return collectHelpRequests(rows)
}

// Assign атомарно закрепляет заявку за офицером: условие WHERE перепроверяется
// после снятия блокировки строки, поэтому из двух параллельных UPDATE успешен один.
func (r *HelpRequestRepository) Assign(ctx context.Context, id uuid.UUID, officerID string) (*models.HelpRequest, error) {
	query := `
		WITH u AS (
			UPDATE help_requests SET
				assigned_officer_id = $2,
				status = 'accepted',
				updated_at = NOW()
			WHERE id = $1 AND status = 'pending' AND assigned_officer_id IS NULL
			RETURNING *
		)
		SELECT` + helpRequestColumns + `
		FROM u
		LEFT JOIN victims v ON v.id = u.requester_id;
	`
	request, err := scanHelpRequest(r.db.QueryRow(ctx, query, id, officerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id, "is not pending")
		}
		return nil, fmt.Errorf("failed to assign help request: %w", err)
	}
	return request, nil
}

// Release снимает офицера и переводит заявку в статус to, если текущий статус входит в from
func (r *HelpRequestRepository) Release(ctx context.Context, id uuid.UUID, from []models.HelpRequestStatus, to models.HelpRequestStatus) (*models.HelpRequest, error) {
	allowed := make([]string, len(from))
	for i, status := range from {
		allowed[i] = string(status)
	}

	query := `
		WITH u AS (
			UPDATE help_requests SET
				assigned_officer_id = NULL,
				status = $3,
				updated_at = NOW()
			WHERE id = $1 AND status = ANY($2::text[])
			RETURNING *
		)
		SELECT` + helpRequestColumns + `
		FROM u
		LEFT JOIN victims v ON v.id = u.requester_id;
	`
	request, err := scanHelpRequest(r.db.QueryRow(ctx, query, id, allowed, string(to)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id, "cannot be released")
		}
		return nil, fmt.Errorf("failed to release help request: %w", err)
	}
	return request, nil
}

// MarkInChat переводит принятые заявки пары в in_chat
func (r *HelpRequestRepository) MarkInChat(ctx context.Context, officerID, victimID string) ([]*models.HelpRequest, error) {
	query := `
		WITH u AS (
			UPDATE help_requests SET
				status = 'in_chat',
				updated_at = NOW()
			WHERE assigned_officer_id = $1 AND requester_id = $2 AND status = 'accepted'
			RETURNING *
		)
		SELECT` + helpRequestColumns + `
		FROM u
		LEFT JOIN victims v ON v.id = u.requester_id;
	`
	rows, err := r.db.Query(ctx, query, officerID, victimID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark help requests as in chat: %w", err)
	}
	return collectHelpRequests(rows)
}

// missOrConflict различает отсутствующую заявку и заявку в неподходящем состоянии
func (r *HelpRequestRepository) missOrConflict(ctx context.Context, id uuid.UUID, reason string) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM help_requests WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check help request existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("help request with id %s: %w", id, models.ErrNotFound)
	}
	return fmt.Errorf("help request with id %s %s: %w", id, reason, models.ErrConflict)
}

func scanHelpRequest(row pgx.Row) (*models.HelpRequest, error) {
	request := &models.HelpRequest{}
	var status string
	err := row.Scan(
		&request.ID,
		&request.RequesterID,
		&request.RequesterName,
		&request.Location.Latitude,
		&request.Location.Longitude,
		&status,
		&request.AssignedOfficerID,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	request.Status = models.HelpRequestStatus(status)
	return request, nil
}

func collectHelpRequests(rows pgx.Rows) ([]*models.HelpRequest, error) {
	defer rows.Close()

	requests := make([]*models.HelpRequest, 0)
	for rows.Next() {
		request, err := scanHelpRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan help request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return requests, nil
}
