package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/finance"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) finance.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transactions (id, date, type, category, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date, type, category, amount, description, created_at
	`

	var created finance.Transaction
	err := q.QueryRow(ctx, query,
		uuid.NewString(), t.Date, t.Type, t.Category, t.Amount, t.Description,
	).Scan(
		&created.ID, &created.Date, &created.Type, &created.Category,
		&created.Amount, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return created, nil
}

func (r *transactionRepository) List(ctx context.Context, start, end *time.Time) ([]finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, type, category, amount, description, created_at
		FROM transactions
	`
	args := []interface{}{}
	i := 1
	if start != nil {
		query += ` WHERE date >= $` + strconv.Itoa(i)
		args = append(args, *start)
		i++
	}
	if end != nil {
		if i == 1 {
			query += ` WHERE`
		} else {
			query += ` AND`
		}
		query += ` date <= $` + strconv.Itoa(i)
		args = append(args, *end)
	}
	query += ` ORDER BY date ASC, created_at ASC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []finance.Transaction
	for rows.Next() {
		var t finance.Transaction
		if err := rows.Scan(
			&t.ID, &t.Date, &t.Type, &t.Category, &t.Amount, &t.Description, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return transactions, nil
}
