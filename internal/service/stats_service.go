package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
)

// Data sources for class statistics. Each is a narrow view of a repository.
type (
	marksStatsSource interface {
		AvgAndCount(ctx context.Context, cc model.ClassContext) (float64, int, error)
	}
	studentCounter interface {
		CountByCohort(ctx context.Context, department, year, division string) (int, error)
	}
	pendingQueryCounter interface {
		CountPending(ctx context.Context, cc model.ClassContext) (int, error)
	}
	faSettingChecker interface {
		Exists(ctx context.Context, cc model.ClassContext) (bool, error)
	}
)

// StatsService computes summary statistics for a class context.
type StatsService struct {
	marks    marksStatsSource
	students studentCounter
	queries  pendingQueryCounter
	settings faSettingChecker
	log      zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(marks marksStatsSource, students studentCounter, queries pendingQueryCounter, settings faSettingChecker, log zerolog.Logger) *StatsService {
	return &StatsService{
		marks:    marks,
		students: students,
		queries:  queries,
		settings: settings,
		log:      log.With().Str("component", "stats_service").Logger(),
	}
}

// ClassStats aggregates the metrics for one class context. The average is
// the mean over every matching marks row, rounded to the nearest integer —
// repeated uploads for the same student or paper all count, so re-uploads
// skew the average on purpose. The student count ignores subject, which is
// not part of the student record.
func (s *StatsService) ClassStats(ctx context.Context, cc model.ClassContext) (*model.ClassStats, error) {
	avg, submissions, err := s.marks.AvgAndCount(ctx, cc)
	if err != nil {
		return nil, err
	}

	totalStudents, err := s.students.CountByCohort(ctx, cc.Department, cc.Year, cc.Division)
	if err != nil {
		return nil, err
	}

	pending, err := s.queries.CountPending(ctx, cc)
	if err != nil {
		return nil, err
	}

	faSet, err := s.settings.Exists(ctx, cc)
	if err != nil {
		return nil, err
	}

	return &model.ClassStats{
		AvgMarks:            int(math.Round(avg)),
		TotalStudents:       totalStudents,
		SubmissionsReceived: submissions,
		PendingQueries:      pending,
		FAModeSet:           faSet,
	}, nil
}
