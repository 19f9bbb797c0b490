package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventgate/internal/domain"
)

type gateRepository struct {
	DB *sql.DB
}

func NewGateRepository(db *sql.DB) domain.GateRepository {
	return &gateRepository{
		DB: db,
	}
}

func (r *gateRepository) Create(ctx context.Context, g *domain.Gate) error {
	query := `
		INSERT INTO gates (id, event_id, name, access_code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, g.ID, g.EventID, g.Name, g.AccessCode, g.IsActive, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrAccessCodeTaken
		}
		return err
	}
	return nil
}

func (r *gateRepository) GetByID(ctx context.Context, id string) (*domain.Gate, error) {
	query := `
		SELECT id, event_id, name, access_code, is_active, created_at, updated_at
		FROM gates
		WHERE id = $1
	`
	g := &domain.Gate{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.EventID, &g.Name, &g.AccessCode, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGateNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *gateRepository) GetByAccessCode(ctx context.Context, accessCode string) (*domain.Gate, error) {
	query := `
		SELECT id, event_id, name, access_code, is_active, created_at, updated_at
		FROM gates
		WHERE access_code = $1
	`
	g := &domain.Gate{}
	err := r.DB.QueryRowContext(ctx, query, accessCode).Scan(
		&g.ID, &g.EventID, &g.Name, &g.AccessCode, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGateNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *gateRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Gate, error) {
	query := `
		SELECT id, event_id, name, access_code, is_active, created_at, updated_at
		FROM gates
		WHERE event_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	gates := make([]*domain.Gate, 0)
	for rows.Next() {
		g := &domain.Gate{}
		if err := rows.Scan(&g.ID, &g.EventID, &g.Name, &g.AccessCode, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}
	return gates, rows.Err()
}

func (r *gateRepository) Update(ctx context.Context, g *domain.Gate) error {
	query := `
		UPDATE gates
		SET name = $2, access_code = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, g.ID, g.Name, g.AccessCode, g.IsActive, g.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrAccessCodeTaken
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGateNotFound
	}
	return nil
}

func (r *gateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGateNotFound
	}
	return nil
}
