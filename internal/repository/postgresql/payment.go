package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/payment"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type workerPaymentRepository struct {
	db *database.DB
}

func NewWorkerPaymentRepository(db *database.DB) payment.WorkerPaymentRepository {
	return &workerPaymentRepository{db: db}
}

func (r *workerPaymentRepository) Create(ctx context.Context, p payment.WorkerPayment) (payment.WorkerPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_payments (id, worker_id, date, amount, type, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, date, amount, type, notes, created_at
	`

	var created payment.WorkerPayment
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.WorkerID, p.Date, p.Amount, p.Type, p.Notes,
	).Scan(
		&created.ID, &created.WorkerID, &created.Date, &created.Amount,
		&created.Type, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return payment.WorkerPayment{}, fmt.Errorf("failed to create worker payment: %w", err)
	}

	return created, nil
}

func (r *workerPaymentRepository) List(ctx context.Context, workerID *string) ([]payment.WorkerPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.worker_id, p.date, p.amount, p.type, p.notes, p.created_at, w.name
		FROM worker_payments p
		JOIN workers w ON w.id = p.worker_id
	`
	args := []interface{}{}
	if workerID != nil {
		query += ` WHERE p.worker_id = $1`
		args = append(args, *workerID)
	}
	query += ` ORDER BY p.date ASC, p.created_at ASC, p.id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker payments: %w", err)
	}
	defer rows.Close()

	return scanWorkerPaymentRows(rows)
}

func (r *workerPaymentRepository) ListRange(ctx context.Context, start, end time.Time) ([]payment.WorkerPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.worker_id, p.date, p.amount, p.type, p.notes, p.created_at, w.name
		FROM worker_payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.date >= $1 AND p.date <= $2
		ORDER BY p.date ASC, p.created_at ASC, p.id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker payments range: %w", err)
	}
	defer rows.Close()

	return scanWorkerPaymentRows(rows)
}

func scanWorkerPaymentRows(rows pgx.Rows) ([]payment.WorkerPayment, error) {
	var payments []payment.WorkerPayment
	for rows.Next() {
		var p payment.WorkerPayment
		if err := rows.Scan(
			&p.ID, &p.WorkerID, &p.Date, &p.Amount, &p.Type, &p.Notes, &p.CreatedAt, &p.WorkerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read worker payments: %w", err)
	}
	return payments, nil
}
