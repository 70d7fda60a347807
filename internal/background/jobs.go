package background

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"

	"github.com/beaconhq/beacon/internal/storage"
)

// metricSampleInterval is how often a default-value point is recorded for
// charted metrics between external pushes.
const metricSampleInterval = time.Minute

// PeriodicJobs builds one periodic job per active timed action from its
// cron schedule, plus a fixed-interval sampler job per charted metric.
func PeriodicJobs(ctx context.Context, actions *storage.ActionStore, metrics *storage.MetricStore) ([]*river.PeriodicJob, error) {
	active, err := actions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing timed actions: %w", err)
	}

	var jobs []*river.PeriodicJob
	for _, action := range active {
		schedule, err := cron.ParseStandard(action.Schedule)
		if err != nil {
			return nil, fmt.Errorf("parsing schedule %q for action %q: %w", action.Schedule, action.Name, err)
		}

		actionID := action.ID
		jobs = append(jobs, river.NewPeriodicJob(
			schedule,
			func() (river.JobArgs, *river.InsertOpts) {
				return ActionRunArgs{ActionID: actionID}, nil
			},
			nil,
		))
	}

	charted, err := metrics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}

	for _, metric := range charted {
		if !metric.DisplayChart {
			continue
		}

		metricID := metric.ID
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(metricSampleInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return MetricSampleArgs{MetricID: metricID}, nil
			},
			nil,
		))
	}

	return jobs, nil
}
