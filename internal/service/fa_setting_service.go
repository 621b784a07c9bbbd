package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
)

// ErrInvalidFAMode is returned when the mode is not in the fixed enumeration.
var ErrInvalidFAMode = errors.New("invalid FA mode")

type faSettingStore interface {
	Replace(ctx context.Context, s *model.FASetting) error
	Get(ctx context.Context, cc model.ClassContext) (*model.FASetting, error)
}

// FASettingService manages per-class Formative Assessment mode settings.
type FASettingService struct {
	settings faSettingStore
	cache    filterInvalidator
	log      zerolog.Logger
}

// NewFASettingService creates a new FASettingService. cache may be nil.
func NewFASettingService(settings faSettingStore, cache filterInvalidator, log zerolog.Logger) *FASettingService {
	return &FASettingService{
		settings: settings,
		cache:    cache,
		log:      log.With().Str("component", "fa_setting_service").Logger(),
	}
}

// Set replaces the FA setting for the class context, keeping at most one row
// per (subject, division, department, year) tuple. The replace runs in a
// single transaction, so concurrent calls cannot leave zero or two rows.
func (s *FASettingService) Set(ctx context.Context, cc model.ClassContext, mode model.FAMode) (*model.FASetting, error) {
	if !model.ValidFAMode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFAMode, mode)
	}

	setting := &model.FASetting{
		Subject:    cc.Subject,
		Division:   cc.Division,
		Department: cc.Department,
		Year:       cc.Year,
		Mode:       mode,
	}
	if err := s.settings.Replace(ctx, setting); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Filter cache invalidation failed")
		}
	}

	s.log.Info().
		Str("subject", cc.Subject).
		Str("division", cc.Division).
		Str("mode", string(mode)).
		Msg("FA mode set")

	return setting, nil
}

// Get returns the setting for the class context, or nil if none is set.
func (s *FASettingService) Get(ctx context.Context, cc model.ClassContext) (*model.FASetting, error) {
	return s.settings.Get(ctx, cc)
}
