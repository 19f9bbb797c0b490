package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventgate/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{
		DB: db,
	}
}

const guestColumns = `id, event_id, name, email, phone, rsvp_status, rsvp_at, checked_in, checked_in_at, checked_out, checked_out_at, qr_code, created_at, updated_at`

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (id, event_id, name, email, phone, rsvp_status, rsvp_at, checked_in, checked_in_at, checked_out, checked_out_at, qr_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.ExecContext(ctx, query,
		g.ID, g.EventID, g.Name, g.Email, g.Phone, g.RSVPStatus, g.RSVPAt,
		g.CheckedIn, g.CheckedInAt, g.CheckedOut, g.CheckedOutAt, g.QRCode, g.CreatedAt, g.UpdatedAt,
	)
	return err
}

func scanGuestRow(scan func(dest ...any) error) (*domain.Guest, error) {
	g := &domain.Guest{}
	var rsvpAtNull, inAtNull, outAtNull sql.NullTime
	var qrNull sql.NullString
	err := scan(
		&g.ID, &g.EventID, &g.Name, &g.Email, &g.Phone, &g.RSVPStatus, &rsvpAtNull,
		&g.CheckedIn, &inAtNull, &g.CheckedOut, &outAtNull, &qrNull, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rsvpAtNull.Valid {
		g.RSVPAt = &rsvpAtNull.Time
	}
	if inAtNull.Valid {
		g.CheckedInAt = &inAtNull.Time
	}
	if outAtNull.Valid {
		g.CheckedOutAt = &outAtNull.Time
	}
	if qrNull.Valid {
		g.QRCode = &qrNull.String
	}
	return g, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	g, err := scanGuestRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM guests WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE event_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuestRow(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		guests = append(guests, g)
	}
	return guests, total, rows.Err()
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, email = $3, phone = $4, rsvp_status = $5, rsvp_at = $6,
		    checked_in = $7, checked_in_at = $8, checked_out = $9, checked_out_at = $10,
		    qr_code = $11, updated_at = $12
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		g.ID, g.Name, g.Email, g.Phone, g.RSVPStatus, g.RSVPAt,
		g.CheckedIn, g.CheckedInAt, g.CheckedOut, g.CheckedOutAt, g.QRCode, g.UpdatedAt,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}
