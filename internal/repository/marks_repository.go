package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// MarksRepository handles marks data access.
type MarksRepository struct {
	pool *pgxpool.Pool
}

// NewMarksRepository creates a new MarksRepository.
func NewMarksRepository(pool *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{pool: pool}
}

// InsertBatch inserts all records in one transaction via COPY.
// Either every row lands or none do.
func (r *MarksRepository) InsertBatch(ctx context.Context, records []model.Marks) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"marks"},
		[]string{"student_id", "student_name", "subject", "division", "department", "year", "paper", "marks", "uploaded_at"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			m := records[i]
			return []interface{}{
				m.StudentID, m.StudentName, m.Subject, m.Division,
				m.Department, m.Year, m.Paper, m.Marks, m.UploadedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy marks: %w", err)
	}

	return tx.Commit(ctx)
}

// AvgAndCount returns the arithmetic mean and row count of marks matching the
// class context. Every row counts once, including repeated uploads for the
// same student or paper. Avg is 0 when no rows match.
func (r *MarksRepository) AvgAndCount(ctx context.Context, cc model.ClassContext) (float64, int, error) {
	var avg float64
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(marks), 0), COUNT(*)
		 FROM marks
		 WHERE subject = $1 AND division = $2 AND department = $3 AND year = $4`,
		cc.Subject, cc.Division, cc.Department, cc.Year,
	).Scan(&avg, &count)
	return avg, count, err
}
