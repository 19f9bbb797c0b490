package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventgate/internal/domain"
)

func TestScanRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	data := "qr-payload"

	tests := []struct {
		name    string
		scan    *domain.Scan
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success with scan data",
			scan: &domain.Scan{ID: "scan-1", GuestID: "guest-1", GateID: "gate-1", EventID: "ev-1", Timestamp: now, Result: domain.ScanResultSuccess, ScanData: &data, CreatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO scans`).
					WithArgs("scan-1", "guest-1", "gate-1", "ev-1", now, "success", &data, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "success without scan data",
			scan: &domain.Scan{ID: "scan-2", GuestID: "guest-1", GateID: "gate-1", EventID: "ev-1", Timestamp: now, Result: domain.ScanResultDenied, CreatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO scans`).
					WithArgs("scan-2", "guest-1", "gate-1", "ev-1", now, "denied", nil, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			scan: &domain.Scan{ID: "scan-3", GuestID: "guest-1", GateID: "gate-1", EventID: "ev-1", Timestamp: now, Result: domain.ScanResultInvalid, CreatedAt: now},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO scans`).
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
			repo := NewScanRepository(db)
			err = repo.Create(ctx, tt.scan)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScanRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("returns newest first with total", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM scans WHERE event_id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at\s+FROM scans\s+WHERE event_id = \$1`).
			WithArgs("ev-1", 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "gate_id", "event_id", "timestamp", "result", "scan_data", "created_at"}).
				AddRow("scan-2", "guest-2", "gate-1", "ev-1", now, "denied", nil, now).
				AddRow("scan-1", "guest-1", "gate-1", "ev-1", now.Add(-time.Minute), "success", "payload", now.Add(-time.Minute)))

		repo := NewScanRepository(db)
		scans, total, err := repo.ListByEventID(ctx, "ev-1", domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, scans, 2)
		require.Equal(t, "scan-2", scans[0].ID)
		require.Nil(t, scans[0].ScanData)
		require.NotNil(t, scans[1].ScanData)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScanRepository_ListByGuestID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("empty history", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at\s+FROM scans\s+WHERE guest_id = \$1`).
			WithArgs("guest-9").
			WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "gate_id", "event_id", "timestamp", "result", "scan_data", "created_at"}))

		repo := NewScanRepository(db)
		scans, err := repo.ListByGuestID(ctx, "guest-9")
		require.NoError(t, err)
		require.Empty(t, scans)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("multiple attempts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at\s+FROM scans\s+WHERE guest_id = \$1`).
			WithArgs("guest-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "gate_id", "event_id", "timestamp", "result", "scan_data", "created_at"}).
				AddRow("scan-2", "guest-1", "gate-1", "ev-1", now, "success", nil, now).
				AddRow("scan-1", "guest-1", "gate-2", "ev-1", now.Add(-time.Hour), "invalid", nil, now.Add(-time.Hour)))

		repo := NewScanRepository(db)
		scans, err := repo.ListByGuestID(ctx, "guest-1")
		require.NoError(t, err)
		require.Len(t, scans, 2)
		require.Equal(t, "invalid", scans[1].Result)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScanRepository_ListByGateID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("multiple guests at one gate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at\s+FROM scans\s+WHERE gate_id = \$1`).
			WithArgs("gate-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "gate_id", "event_id", "timestamp", "result", "scan_data", "created_at"}).
				AddRow("scan-2", "guest-2", "gate-1", "ev-1", now, "denied", nil, now).
				AddRow("scan-1", "guest-1", "gate-1", "ev-1", now.Add(-time.Minute), "success", nil, now.Add(-time.Minute)))

		repo := NewScanRepository(db)
		scans, err := repo.ListByGateID(ctx, "gate-1")
		require.NoError(t, err)
		require.Len(t, scans, 2)
		require.Equal(t, "scan-2", scans[0].ID)
		require.Equal(t, "guest-1", scans[1].GuestID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, guest_id, gate_id, event_id, timestamp, result, scan_data, created_at\s+FROM scans\s+WHERE gate_id = \$1`).
			WithArgs("gate-1").
			WillReturnError(sql.ErrConnDone)

		repo := NewScanRepository(db)
		_, err = repo.ListByGateID(ctx, "gate-1")
		require.Error(t, err)
	})
}
