package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// FASettingRepository handles FA mode setting data access.
type FASettingRepository struct {
	pool *pgxpool.Pool
}

// NewFASettingRepository creates a new FASettingRepository.
func NewFASettingRepository(pool *pgxpool.Pool) *FASettingRepository {
	return &FASettingRepository{pool: pool}
}

// Replace deletes any existing setting for the class context and inserts the
// new one, all in a single transaction. The delete-then-insert pair is the
// documented semantics for "set"; running it transactionally guarantees
// exactly one row per tuple survives concurrent calls.
func (r *FASettingRepository) Replace(ctx context.Context, s *model.FASetting) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM fa_settings WHERE subject = $1 AND division = $2 AND department = $3 AND year = $4`,
		s.Subject, s.Division, s.Department, s.Year)
	if err != nil {
		return fmt.Errorf("delete existing: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO fa_settings (subject, division, department, year, mode)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		s.Subject, s.Division, s.Department, s.Year, s.Mode,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert setting: %w", err)
	}

	return tx.Commit(ctx)
}

// Get returns the setting for the class context, or nil if none exists.
func (r *FASettingRepository) Get(ctx context.Context, cc model.ClassContext) (*model.FASetting, error) {
	s := &model.FASetting{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, subject, division, department, year, mode, created_at
		 FROM fa_settings WHERE subject = $1 AND division = $2 AND department = $3 AND year = $4`,
		cc.Subject, cc.Division, cc.Department, cc.Year,
	).Scan(&s.ID, &s.Subject, &s.Division, &s.Department, &s.Year, &s.Mode, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Exists reports whether any setting matches the class context.
func (r *FASettingRepository) Exists(ctx context.Context, cc model.ClassContext) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM fa_settings
			WHERE subject = $1 AND division = $2 AND department = $3 AND year = $4
		)`,
		cc.Subject, cc.Division, cc.Department, cc.Year,
	).Scan(&exists)
	return exists, err
}
