package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/repository"
)

// fakeQueryStore keeps queries in memory and mimics the repository's
// respond semantics: overwrite response, force status resolved.
type fakeQueryStore struct {
	queries map[int64]*model.Query
}

func newFakeQueryStore(queries ...*model.Query) *fakeQueryStore {
	s := &fakeQueryStore{queries: make(map[int64]*model.Query)}
	for _, q := range queries {
		s.queries[q.ID] = q
	}
	return s
}

func (s *fakeQueryStore) GetAll(context.Context) ([]model.Query, error) {
	var out []model.Query
	for _, q := range s.queries {
		out = append(out, *q)
	}
	return out, nil
}

func (s *fakeQueryStore) Respond(_ context.Context, id int64, responseText string) (*model.Query, error) {
	q, ok := s.queries[id]
	if !ok {
		return nil, repository.ErrQueryNotFound
	}
	q.Response = &responseText
	q.Status = model.QueryStatusResolved
	copied := *q
	return &copied, nil
}

type fakeNotificationSource []model.Notification

func (f fakeNotificationSource) GetActive(context.Context) ([]model.Notification, error) {
	return f, nil
}

func pendingQuery(id int64) *model.Query {
	return &model.Query{
		ID:          id,
		StudentID:   "S001",
		StudentName: "Aarav Deshmukh",
		Subject:     "DBMS",
		Division:    "A",
		Department:  "Computer",
		Year:        "TE",
		Message:     "Please recheck paper 2.",
		Status:      model.QueryStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestRespondResolvesQuery(t *testing.T) {
	store := newFakeQueryStore(pendingQuery(1))
	svc := NewQueryService(store, fakeNotificationSource{}, zerolog.Nop())

	q, err := svc.Respond(context.Background(), 1, "Rechecked, total is correct.")
	require.NoError(t, err)

	assert.Equal(t, model.QueryStatusResolved, q.Status)
	require.NotNil(t, q.Response)
	assert.Equal(t, "Rechecked, total is correct.", *q.Response)
}

func TestRespondOverwritesPreviousResponse(t *testing.T) {
	store := newFakeQueryStore(pendingQuery(1))
	svc := NewQueryService(store, fakeNotificationSource{}, zerolog.Nop())

	_, err := svc.Respond(context.Background(), 1, "First answer")
	require.NoError(t, err)

	q, err := svc.Respond(context.Background(), 1, "Corrected answer")
	require.NoError(t, err)

	assert.Equal(t, model.QueryStatusResolved, q.Status)
	assert.Equal(t, "Corrected answer", *q.Response)
}

func TestRespondUnknownQuery(t *testing.T) {
	svc := NewQueryService(newFakeQueryStore(), fakeNotificationSource{}, zerolog.Nop())

	_, err := svc.Respond(context.Background(), 99, "hello?")
	require.ErrorIs(t, err, repository.ErrQueryNotFound)
}

func TestListReturnsQueriesAndActiveNotifications(t *testing.T) {
	store := newFakeQueryStore(pendingQuery(1), pendingQuery(2))
	notifications := fakeNotificationSource{
		{ID: 1, Type: "announcement", Message: "Marks published", Status: model.NotificationStatusActive},
	}
	svc := NewQueryService(store, notifications, zerolog.Nop())

	queries, active, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, queries, 2)
	assert.Len(t, active, 1)
}
