package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// ErrQueryNotFound is returned when a query id does not exist.
var ErrQueryNotFound = errors.New("query not found")

// QueryRepository handles student query data access.
type QueryRepository struct {
	pool *pgxpool.Pool
}

// NewQueryRepository creates a new QueryRepository.
func NewQueryRepository(pool *pgxpool.Pool) *QueryRepository {
	return &QueryRepository{pool: pool}
}

// Create inserts a query record. Used by seed tooling; students submit
// queries through a separate system.
func (r *QueryRepository) Create(ctx context.Context, q *model.Query) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO queries (student_id, student_name, subject, division, department, year, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		q.StudentID, q.StudentName, q.Subject, q.Division, q.Department, q.Year, q.Message, q.Status,
	).Scan(&q.ID, &q.CreatedAt)
}

// GetAll retrieves every query, newest first.
func (r *QueryRepository) GetAll(ctx context.Context) ([]model.Query, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, student_name, subject, division, department, year, message, response, status, created_at
		 FROM queries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []model.Query
	for rows.Next() {
		var q model.Query
		if err := rows.Scan(&q.ID, &q.StudentID, &q.StudentName, &q.Subject, &q.Division,
			&q.Department, &q.Year, &q.Message, &q.Response, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// Respond sets the response text and marks the query resolved, returning the
// updated record. Calling it again overwrites the previous response; the last
// write wins. Returns ErrQueryNotFound for an unknown id.
func (r *QueryRepository) Respond(ctx context.Context, id int64, responseText string) (*model.Query, error) {
	q := &model.Query{}
	err := r.pool.QueryRow(ctx,
		`UPDATE queries SET response = $1, status = $2 WHERE id = $3
		 RETURNING id, student_id, student_name, subject, division, department, year, message, response, status, created_at`,
		responseText, model.QueryStatusResolved, id,
	).Scan(&q.ID, &q.StudentID, &q.StudentName, &q.Subject, &q.Division,
		&q.Department, &q.Year, &q.Message, &q.Response, &q.Status, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQueryNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// CountPending counts pending queries matching the full class context.
func (r *QueryRepository) CountPending(ctx context.Context, cc model.ClassContext) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM queries
		 WHERE subject = $1 AND division = $2 AND department = $3 AND year = $4 AND status = $5`,
		cc.Subject, cc.Division, cc.Department, cc.Year, model.QueryStatusPending,
	).Scan(&count)
	return count, err
}
