package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventgate/internal/domain"
)

// scanRepository is append-only: rows are inserted and read, never updated.
type scanRepository struct {
	DB *sql.DB
}

func NewScanRepository(db *sql.DB) domain.ScanRepository {
	return &scanRepository{
		DB: db,
	}
}

const scanColumns = `id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at`

func (r *scanRepository) Create(ctx context.Context, s *domain.Scan) error {
	query := `
		INSERT INTO scans (id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.GuestID, s.GateID, s.EventID, s.Timestamp, s.Result, s.ScanData, s.CreatedAt)
	return err
}

func scanScanRow(scan func(dest ...any) error) (*domain.Scan, error) {
	s := &domain.Scan{}
	var dataNull sql.NullString
	err := scan(&s.ID, &s.GuestID, &s.GateID, &s.EventID, &s.Timestamp, &s.Result, &dataNull, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if dataNull.Valid {
		s.ScanData = &dataNull.String
	}
	return s, nil
}

func (r *scanRepository) GetByID(ctx context.Context, id string) (*domain.Scan, error) {
	query := `
		SELECT ` + scanColumns + `
		FROM scans
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	s, err := scanScanRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *scanRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Scan, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM scans WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + scanColumns + `
		FROM scans
		WHERE event_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	scans := make([]*domain.Scan, 0)
	for rows.Next() {
		s, err := scanScanRow(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		scans = append(scans, s)
	}
	return scans, total, rows.Err()
}

func (r *scanRepository) ListByGuestID(ctx context.Context, guestID string) ([]*domain.Scan, error) {
	return r.listBy(ctx, `guest_id`, guestID)
}

func (r *scanRepository) ListByGateID(ctx context.Context, gateID string) ([]*domain.Scan, error) {
	return r.listBy(ctx, `gate_id`, gateID)
}

func (r *scanRepository) listBy(ctx context.Context, column, value string) ([]*domain.Scan, error) {
	query := `
		SELECT ` + scanColumns + `
		FROM scans
		WHERE ` + column + ` = $1
		ORDER BY timestamp DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	scans := make([]*domain.Scan, 0)
	for rows.Next() {
		s, err := scanScanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}
