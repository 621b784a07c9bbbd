package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a student record. Used by seed tooling; enrollment is not
// part of the HTTP surface.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (student_id, name, department, year, division)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		s.StudentID, s.Name, s.Department, s.Year, s.Division,
	).Scan(&s.ID, &s.CreatedAt)
}

// CountByCohort counts students in a (department, year, division) cohort.
// Subject is intentionally absent: students are not enrolled per subject.
func (r *StudentRepository) CountByCohort(ctx context.Context, department, year, division string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE department = $1 AND year = $2 AND division = $3`,
		department, year, division,
	).Scan(&count)
	return count, err
}
