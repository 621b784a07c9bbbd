package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// FilterRepository gathers distinct filter values across the record kinds
// for the init endpoint.
type FilterRepository struct {
	pool *pgxpool.Pool
}

// NewFilterRepository creates a new FilterRepository.
func NewFilterRepository(pool *pgxpool.Pool) *FilterRepository {
	return &FilterRepository{pool: pool}
}

// Options collects distinct subjects, departments, years, and divisions from
// stored data. Subjects come from marks, queries, and FA settings; the cohort
// columns additionally include students, so freshly seeded cohorts appear in
// dropdowns before any marks exist.
func (r *FilterRepository) Options(ctx context.Context) (*model.FilterOptions, error) {
	subjects, err := r.distinct(ctx,
		`SELECT subject FROM marks
		 UNION SELECT subject FROM queries
		 UNION SELECT subject FROM fa_settings
		 ORDER BY 1 ASC`)
	if err != nil {
		return nil, err
	}

	departments, err := r.distinct(ctx,
		`SELECT department FROM students
		 UNION SELECT department FROM marks
		 ORDER BY 1 ASC`)
	if err != nil {
		return nil, err
	}

	years, err := r.distinct(ctx,
		`SELECT year FROM students
		 UNION SELECT year FROM marks
		 ORDER BY 1 ASC`)
	if err != nil {
		return nil, err
	}

	divisions, err := r.distinct(ctx,
		`SELECT division FROM students
		 UNION SELECT division FROM marks
		 ORDER BY 1 ASC`)
	if err != nil {
		return nil, err
	}

	return &model.FilterOptions{
		Subjects:    subjects,
		Departments: departments,
		Years:       years,
		Divisions:   divisions,
		FAModes:     model.FAModes,
	}, nil
}

func (r *FilterRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
