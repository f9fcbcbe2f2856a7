package jobs_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/config"
	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/jobs"
	"agrorent-backend/internal/service"
)

// MockReputationService only answers RebuildAggregates; jobs never call the rest.
type MockReputationService struct {
	mock.Mock
	service.ReputationService
}

func (m *MockReputationService) RebuildAggregates(ctx context.Context) (*service.RebuildSummary, error) {
	args := m.Called(ctx)
	if fn, ok := args.Get(0).(func()); ok {
		fn()
	}
	if s, ok := args.Get(0).(*service.RebuildSummary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRebuildRatingAggregates(t *testing.T) {
	rep := new(MockReputationService)
	rep.On("RebuildAggregates", mock.Anything).
		Return(&service.RebuildSummary{ReviewsScanned: 3, SubjectsWritten: 2, MachinesWritten: 1}, nil)

	jr := jobs.NewJobRunner(&jobs.Services{Reputation: rep}, &config.Config{})

	require.NoError(t, jr.RebuildRatingAggregates())
	rep.AssertExpectations(t)

	ctx := rep.Calls[0].Arguments.Get(0).(context.Context)
	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestRebuildRatingAggregates_Failure(t *testing.T) {
	rep := new(MockReputationService)
	rep.On("RebuildAggregates", mock.Anything).
		Return(nil, domain.NewRetrievalError("list reviews", assert.AnError))

	jr := jobs.NewJobRunner(&jobs.Services{Reputation: rep}, &config.Config{})

	err := jr.RunAllNightlyJobs()
	assert.ErrorIs(t, err, domain.ErrRetrieval)
}

func TestRebuildRatingAggregates_PanicRecovered(t *testing.T) {
	rep := new(MockReputationService)
	rep.On("RebuildAggregates", mock.Anything).
		Return(func() { panic("aggregate " + uuid.NewString()) }, nil)

	jr := jobs.NewJobRunner(&jobs.Services{Reputation: rep}, &config.Config{})

	var err error
	assert.NotPanics(t, func() { err = jr.RebuildRatingAggregates() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}
