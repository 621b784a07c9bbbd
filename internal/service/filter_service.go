package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
)

// filterCacheKey stores the serialized filter options in Redis.
const filterCacheKey = "markboard:filter_options"

// filterInvalidator drops the cached filter options after a write that may
// introduce new distinct values.
type filterInvalidator interface {
	Invalidate(ctx context.Context) error
}

type filterSource interface {
	Options(ctx context.Context) (*model.FilterOptions, error)
}

// FilterService serves the distinct filter values for the init endpoint,
// cached in Redis for a short TTL. Only this dropdown-options lookup goes
// through the cache; core reads always hit PostgreSQL.
type FilterService struct {
	repo filterSource
	rdb  *redis.Client
	ttl  time.Duration
	log  zerolog.Logger
}

// NewFilterService creates a new FilterService. rdb may be nil to disable
// caching entirely.
func NewFilterService(repo filterSource, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *FilterService {
	return &FilterService{
		repo: repo,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With().Str("component", "filter_service").Logger(),
	}
}

// Options returns the distinct filter values, from cache when fresh.
func (s *FilterService) Options(ctx context.Context) (*model.FilterOptions, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, filterCacheKey).Bytes()
		if err == nil {
			var opts model.FilterOptions
			if err := json.Unmarshal(cached, &opts); err == nil {
				return &opts, nil
			}
			// Corrupt cache entry; fall through to the database.
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Msg("Filter cache read failed")
		}
	}

	opts, err := s.repo.Options(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(opts); err == nil {
			if err := s.rdb.Set(ctx, filterCacheKey, payload, s.ttl).Err(); err != nil {
				s.log.Warn().Err(err).Msg("Filter cache write failed")
			}
		}
	}

	return opts, nil
}

// Invalidate drops the cached filter options so the next read is fresh.
func (s *FilterService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, filterCacheKey).Err()
}
