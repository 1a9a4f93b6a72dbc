package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/attendance"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, worker_id, date, status, hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, worker_id, date, status, hours, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.WorkerID, a.Date, a.Status, a.Hours,
	).Scan(
		&created.ID, &created.WorkerID, &created.Date, &created.Status,
		&created.Hours, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.status, a.hours, a.created_at, a.updated_at,
			   w.name, w.role, w.daily_rate
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.id = $1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WorkerID, &a.Date, &a.Status, &a.Hours, &a.CreatedAt, &a.UpdatedAt,
		&a.WorkerName, &a.WorkerRole, &a.DailyRate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

// FindByWorkerAndDate returns the most recent record for the pair when
// duplicates exist so the mark-or-update path always touches the
// authoritative row.
func (r *attendanceRepository) FindByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, date, status, hours, created_at, updated_at
		FROM attendance
		WHERE worker_id = $1 AND date = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, workerID, date).Scan(
		&a.ID, &a.WorkerID, &a.Date, &a.Status, &a.Hours, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to find attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) UpdateRecord(ctx context.Context, id string, status string, hours *decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET status = $1, hours = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, hours, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.status, a.hours, a.created_at, a.updated_at,
			   w.name, w.role, w.daily_rate
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date = $1
		ORDER BY w.name ASC, a.id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListRange orders by (date, created_at, id); the payroll engine's
// last-wins day collapse depends on exactly this ordering.
func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.date, a.status, a.hours, a.created_at, a.updated_at,
			   w.name, w.role, w.daily_rate
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date ASC, a.created_at ASC, a.id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.WorkerID, &a.Date, &a.Status, &a.Hours, &a.CreatedAt, &a.UpdatedAt,
			&a.WorkerName, &a.WorkerRole, &a.DailyRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}
