package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventgate/internal/domain"
)

type gateSessionRepository struct {
	DB *sql.DB
}

func NewGateSessionRepository(db *sql.DB) domain.GateSessionRepository {
	return &gateSessionRepository{
		DB: db,
	}
}

func (r *gateSessionRepository) ReplaceForGate(ctx context.Context, s *domain.GateSession) error {
	// Delete then insert; the unique constraint on gate_id backstops a
	// concurrent authentication for the same gate.
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM gate_sessions WHERE gate_id = $1`, s.GateID); err != nil {
		return err
	}
	query := `
		INSERT INTO gate_sessions (id, gate_id, event_id, operator_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.GateID, s.EventID, s.OperatorID, s.TokenHash, s.ExpiresAt, s.CreatedAt)
	return err
}

func (r *gateSessionRepository) GetByGateID(ctx context.Context, gateID string) (*domain.GateSession, error) {
	query := `
		SELECT id, gate_id, event_id, operator_id, token_hash, expires_at, created_at
		FROM gate_sessions
		WHERE gate_id = $1
	`
	s := &domain.GateSession{}
	var operatorNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, gateID).Scan(
		&s.ID, &s.GateID, &s.EventID, &operatorNull, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if operatorNull.Valid {
		s.OperatorID = &operatorNull.String
	}
	return s, nil
}

func (r *gateSessionRepository) DeleteByGateID(ctx context.Context, gateID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gate_sessions WHERE gate_id = $1`, gateID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gateSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM gate_sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
