package jobs

import (
	"context"

	"agrorent-backend/internal/logger"
)

// RebuildRatingAggregates recomputes the rating counters from the full review
// set, repairing any drift left by failed incremental updates.
func (jr *JobRunner) RebuildRatingAggregates() error {
	return jr.runWithRecovery("RebuildRatingAggregates", func(ctx context.Context) error {
		summary, err := jr.services.Reputation.RebuildAggregates(ctx)
		if err != nil {
			return err
		}
		logger.Info("Rating aggregates rebuilt",
			"reviews", summary.ReviewsScanned,
			"subjects", summary.SubjectsWritten,
			"machines", summary.MachinesWritten,
		)
		return nil
	})
}
