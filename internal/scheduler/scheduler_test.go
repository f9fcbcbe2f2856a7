package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/config"
	"agrorent-backend/internal/jobs"
)

func runnerWithSchedule(spec string) *jobs.JobRunner {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{RebuildRatingAggregates: spec}}
	return jobs.NewJobRunner(&jobs.Services{}, cfg)
}

func TestNewScheduler_RegistersRebuild(t *testing.T) {
	s, err := NewScheduler(runnerWithSchedule("0 0 3 * * *"))
	require.NoError(t, err)

	runs := s.NextRuns()
	require.Len(t, runs, 1)
	next := runs[0].UTC()
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestNewScheduler_BadExpression(t *testing.T) {
	_, err := NewScheduler(runnerWithSchedule("every night"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RebuildRatingAggregates")
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(runnerWithSchedule("0 0 3 * * *"))
	require.NoError(t, err)

	s.Start()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
