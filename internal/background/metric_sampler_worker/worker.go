// Package metric_sampler_worker backfills charted metrics with their
// default value so gaps between external pushes still chart.
package metric_sampler_worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"github.com/beaconhq/beacon/internal/background"
	"github.com/beaconhq/beacon/internal/storage"
)

type Worker struct {
	river.WorkerDefaults[background.MetricSampleArgs]

	metrics *storage.MetricStore
}

func New(metrics *storage.MetricStore) *Worker {
	return &Worker{metrics: metrics}
}

func (w *Worker) Work(ctx context.Context, job *river.Job[background.MetricSampleArgs]) error {
	metric, err := w.metrics.Get(ctx, job.Args.MetricID)
	if err != nil {
		return fmt.Errorf("loading metric %d: %w", job.Args.MetricID, err)
	}

	return w.metrics.RecordPoint(ctx, metric.ID, metric.DefaultValue, time.Now())
}
