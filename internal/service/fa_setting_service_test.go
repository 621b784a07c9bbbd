package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustat/markboard-backend/internal/model"
)

// fakeFAStore mimics the repository's transactional replace: at most one
// setting per class-context tuple. These tests pin the visible effect (one
// surviving row, second call's mode wins) rather than the interleaving of
// the delete and insert steps.
type fakeFAStore struct {
	settings map[model.ClassContext]*model.FASetting
	nextID   int64
}

func newFakeFAStore() *fakeFAStore {
	return &fakeFAStore{settings: make(map[model.ClassContext]*model.FASetting)}
}

func (s *fakeFAStore) Replace(_ context.Context, setting *model.FASetting) error {
	s.nextID++
	setting.ID = s.nextID
	cc := model.ClassContext{
		Subject:    setting.Subject,
		Division:   setting.Division,
		Department: setting.Department,
		Year:       setting.Year,
	}
	s.settings[cc] = setting
	return nil
}

func (s *fakeFAStore) Get(_ context.Context, cc model.ClassContext) (*model.FASetting, error) {
	return s.settings[cc], nil
}

func TestSetFAMode(t *testing.T) {
	store := newFakeFAStore()
	svc := NewFASettingService(store, nil, zerolog.Nop())

	setting, err := svc.Set(context.Background(), testContext(), model.FAModeOnlineQuiz)
	require.NoError(t, err)
	assert.Equal(t, model.FAModeOnlineQuiz, setting.Mode)
	assert.Equal(t, "DBMS", setting.Subject)
}

func TestSetFAModeTwiceKeepsOneSetting(t *testing.T) {
	store := newFakeFAStore()
	svc := NewFASettingService(store, nil, zerolog.Nop())

	_, err := svc.Set(context.Background(), testContext(), model.FAModeOnlineQuiz)
	require.NoError(t, err)
	_, err = svc.Set(context.Background(), testContext(), model.FAModePoster)
	require.NoError(t, err)

	assert.Len(t, store.settings, 1)

	got, err := svc.Get(context.Background(), testContext())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.FAModePoster, got.Mode)
}

func TestSetFAModeRejectsUnknownMode(t *testing.T) {
	store := newFakeFAStore()
	svc := NewFASettingService(store, nil, zerolog.Nop())

	_, err := svc.Set(context.Background(), testContext(), model.FAMode("Interpretive Dance"))
	require.ErrorIs(t, err, ErrInvalidFAMode)
	assert.Empty(t, store.settings)
}

func TestGetFAModeUnset(t *testing.T) {
	svc := NewFASettingService(newFakeFAStore(), nil, zerolog.Nop())

	got, err := svc.Get(context.Background(), testContext())
	require.NoError(t, err)
	assert.Nil(t, got)
}
