package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventgate/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{
		DB: db,
	}
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (id, email, name, role, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query, o.ID, o.Email, o.Name, o.Role, o.IsActive, o.PasswordHash, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *organizerRepository) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, name, role, is_active, password_hash, created_at, updated_at
		FROM organizers
		WHERE id = $1
	`
	o := &domain.Organizer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.Email, &o.Name, &o.Role, &o.IsActive, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, name, role, is_active, password_hash, created_at, updated_at
		FROM organizers
		WHERE email = $1
	`
	o := &domain.Organizer{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&o.ID, &o.Email, &o.Name, &o.Role, &o.IsActive, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) Update(ctx context.Context, o *domain.Organizer) error {
	query := `
		UPDATE organizers
		SET email = $2, name = $3, role = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, o.ID, o.Email, o.Name, o.Role, o.IsActive, o.UpdatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
