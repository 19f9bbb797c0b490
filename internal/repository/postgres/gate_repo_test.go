package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventgate/internal/domain"
)

func TestGateRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		gate    *domain.Gate
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			gate: &domain.Gate{ID: "gate-1", EventID: "ev-1", Name: "Main Entrance", AccessCode: "ABC123", IsActive: true, CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO gates`).
					WithArgs("gate-1", "ev-1", "Main Entrance", "ABC123", true, now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate access code returns ErrAccessCodeTaken",
			gate: &domain.Gate{ID: "gate-2", EventID: "ev-1", Name: "Side Door", AccessCode: "ABC123", IsActive: true, CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO gates`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrAccessCodeTaken,
		},
		{
			name: "db error",
			gate: &domain.Gate{ID: "gate-3", EventID: "ev-1", Name: "Back", AccessCode: "XYZ789", IsActive: true, CreatedAt: now, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO gates`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewGateRepository(db)
			err = repo.Create(ctx, tt.gate)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGateRepository_GetByAccessCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name       string
		accessCode string
		mock       func(mock sqlmock.Sqlmock)
		wantGate   *domain.Gate
		wantErr    bool
		errIs      error
	}{
		{
			name:       "success",
			accessCode: "ABC123",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, name, access_code, is_active, created_at, updated_at\s+FROM gates\s+WHERE access_code = \$1`).
					WithArgs("ABC123").
					WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "access_code", "is_active", "created_at", "updated_at"}).
						AddRow("gate-1", "ev-1", "Main Entrance", "ABC123", true, now, now))
			},
			wantGate: &domain.Gate{ID: "gate-1", EventID: "ev-1", Name: "Main Entrance", AccessCode: "ABC123", IsActive: true, CreatedAt: now, UpdatedAt: now},
		},
		{
			name:       "unknown code returns ErrGateNotFound",
			accessCode: "NOPE",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, name, access_code, is_active, created_at, updated_at\s+FROM gates\s+WHERE access_code = \$1`).
					WithArgs("NOPE").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrGateNotFound,
		},
		{
			name:       "db error",
			accessCode: "ABC123",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_id, name, access_code, is_active, created_at, updated_at\s+FROM gates\s+WHERE access_code = \$1`).
					WithArgs("ABC123").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewGateRepository(db)
			got, err := repo.GetByAccessCode(ctx, tt.accessCode)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantGate, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGateRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		gate    *domain.Gate
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			gate: &domain.Gate{ID: "gate-1", Name: "Main", AccessCode: "ABC123", IsActive: false, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE gates`).
					WithArgs("gate-1", "Main", "ABC123", false, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			gate: &domain.Gate{ID: "gate-missing", Name: "Main", AccessCode: "ABC123", IsActive: true, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE gates`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrGateNotFound,
		},
		{
			name: "regenerated code collides",
			gate: &domain.Gate{ID: "gate-1", Name: "Main", AccessCode: "TAKEN1", IsActive: true, UpdatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE gates`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrAccessCodeTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewGateRepository(db)
			err = repo.Update(ctx, tt.gate)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGateRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			id:   "gate-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM gates WHERE id = \$1`).
					WithArgs("gate-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   "gate-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM gates WHERE id = \$1`).
					WithArgs("gate-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrGateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			repo := NewGateRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
