package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
)

type queryStore interface {
	GetAll(ctx context.Context) ([]model.Query, error)
	Respond(ctx context.Context, id int64, responseText string) (*model.Query, error)
}

type notificationSource interface {
	GetActive(ctx context.Context) ([]model.Notification, error)
}

// QueryService manages the student query workflow.
type QueryService struct {
	queries       queryStore
	notifications notificationSource
	log           zerolog.Logger
}

// NewQueryService creates a new QueryService.
func NewQueryService(queries queryStore, notifications notificationSource, log zerolog.Logger) *QueryService {
	return &QueryService{
		queries:       queries,
		notifications: notifications,
		log:           log.With().Str("component", "query_service").Logger(),
	}
}

// List returns every query newest-first together with the active
// notifications, newest-first.
func (s *QueryService) List(ctx context.Context) ([]model.Query, []model.Notification, error) {
	queries, err := s.queries.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	notifications, err := s.notifications.GetActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	return queries, notifications, nil
}

// Respond records the instructor's answer and resolves the query. Responding
// again overwrites the previous answer; there is no guard against concurrent
// responders — the last write wins.
func (s *QueryService) Respond(ctx context.Context, id int64, responseText string) (*model.Query, error) {
	q, err := s.queries.Respond(ctx, id, responseText)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("query_id", id).Msg("Query resolved")
	return q, nil
}
