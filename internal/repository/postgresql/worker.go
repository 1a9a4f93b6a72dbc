package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/worker"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, role, daily_rate, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, role, daily_rate, is_active, created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query,
		uuid.NewString(), w.Name, w.Role, w.DailyRate, w.IsActive,
	).Scan(
		&created.ID, &created.Name, &created.Role, &created.DailyRate,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, daily_rate, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Role, &w.DailyRate, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, role, daily_rate, is_active, created_at, updated_at
		FROM workers
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Role, &w.DailyRate, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}

	return workers, nil
}

func (r *workerRepository) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	i := 1

	if req.Name != nil {
		sets = append(sets, "name = $"+strconv.Itoa(i))
		args = append(args, *req.Name)
		i++
	}
	if req.Role != nil {
		sets = append(sets, "role = $"+strconv.Itoa(i))
		args = append(args, *req.Role)
		i++
	}
	if req.DailyRate != nil {
		sets = append(sets, "daily_rate = $"+strconv.Itoa(i))
		args = append(args, *req.DailyRate)
		i++
	}
	if req.IsActive != nil {
		sets = append(sets, "is_active = $"+strconv.Itoa(i))
		args = append(args, *req.IsActive)
		i++
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, req.ID)

	query := "UPDATE workers SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(i) + " RETURNING id"

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

func (r *workerRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}

	return nil
}

func (r *workerRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM workers WHERE is_active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active workers: %w", err)
	}

	return count, nil
}
