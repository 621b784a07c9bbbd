package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustat/markboard-backend/internal/model"
)

type fakeMarksStats struct {
	avg   float64
	count int
}

func (f fakeMarksStats) AvgAndCount(context.Context, model.ClassContext) (float64, int, error) {
	return f.avg, f.count, nil
}

type fakeStudentCounter struct {
	count int
	dept  string
	year  string
	div   string
}

func (f *fakeStudentCounter) CountByCohort(_ context.Context, department, year, division string) (int, error) {
	f.dept, f.year, f.div = department, year, division
	return f.count, nil
}

type fakePendingCounter int

func (f fakePendingCounter) CountPending(context.Context, model.ClassContext) (int, error) {
	return int(f), nil
}

type fakeFAChecker bool

func (f fakeFAChecker) Exists(context.Context, model.ClassContext) (bool, error) {
	return bool(f), nil
}

func TestClassStats(t *testing.T) {
	// Marks 70, 80, 85: mean 78.33 rounds to 78.
	students := &fakeStudentCounter{count: 20}
	svc := NewStatsService(
		fakeMarksStats{avg: (70.0 + 80.0 + 85.0) / 3.0, count: 3},
		students,
		fakePendingCounter(2),
		fakeFAChecker(true),
		zerolog.Nop(),
	)

	stats, err := svc.ClassStats(context.Background(), testContext())
	require.NoError(t, err)

	assert.Equal(t, 78, stats.AvgMarks)
	assert.Equal(t, 20, stats.TotalStudents)
	assert.Equal(t, 3, stats.SubmissionsReceived)
	assert.Equal(t, 2, stats.PendingQueries)
	assert.True(t, stats.FAModeSet)

	// Student counting drops the subject, which students do not carry.
	assert.Equal(t, "Computer", students.dept)
	assert.Equal(t, "TE", students.year)
	assert.Equal(t, "A", students.div)
}

func TestClassStatsEmpty(t *testing.T) {
	svc := NewStatsService(
		fakeMarksStats{},
		&fakeStudentCounter{},
		fakePendingCounter(0),
		fakeFAChecker(false),
		zerolog.Nop(),
	)

	stats, err := svc.ClassStats(context.Background(), testContext())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.AvgMarks)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.SubmissionsReceived)
	assert.Equal(t, 0, stats.PendingQueries)
	assert.False(t, stats.FAModeSet)
}

func TestClassStatsRoundsHalfUp(t *testing.T) {
	svc := NewStatsService(
		fakeMarksStats{avg: 77.5, count: 2},
		&fakeStudentCounter{},
		fakePendingCounter(0),
		fakeFAChecker(false),
		zerolog.Nop(),
	)

	stats, err := svc.ClassStats(context.Background(), testContext())
	require.NoError(t, err)
	assert.Equal(t, 78, stats.AvgMarks)
}
