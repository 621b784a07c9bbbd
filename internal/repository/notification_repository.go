package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustat/markboard-backend/internal/model"
)

// NotificationRepository handles notification data access.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create inserts a notification. Used by seed tooling.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notifications (type, message, status) VALUES ($1, $2, $3) RETURNING id, created_at`,
		n.Type, n.Message, n.Status,
	).Scan(&n.ID, &n.CreatedAt)
}

// GetActive retrieves notifications with status active, newest first.
func (r *NotificationRepository) GetActive(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, type, message, status, created_at
		 FROM notifications WHERE status = $1 ORDER BY created_at DESC`,
		model.NotificationStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.Status, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
