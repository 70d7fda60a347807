// Package action_runner_worker executes due timed actions and records
// their run instances. The run history read by the status page is the
// output of this worker.
package action_runner_worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/riverqueue/river"

	"github.com/beaconhq/beacon/internal/background"
	"github.com/beaconhq/beacon/internal/storage"
)

type Worker struct {
	river.WorkerDefaults[background.ActionRunArgs]

	actions *storage.ActionStore
	client  *http.Client
}

func New(actions *storage.ActionStore) *Worker {
	return &Worker{
		actions: actions,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (w *Worker) Work(ctx context.Context, job *river.Job[background.ActionRunArgs]) error {
	action, err := w.actions.Get(ctx, job.Args.ActionID)
	if err != nil {
		return fmt.Errorf("loading action %d: %w", job.Args.ActionID, err)
	}
	if !action.Active {
		return nil
	}

	started := time.Now()
	target := started.Add(time.Duration(action.CompletionSecs) * time.Second)

	completed, output := w.probe(ctx, action.TargetURL)
	ended := time.Now()

	params := storage.RecordInstanceParams{
		ActionID:          action.ID,
		StartedAt:         started,
		EndedAt:           ended,
		TargetCompletedAt: target,
		Completed:         completed,
		Output:            output,
	}
	if completed {
		params.CompletedAt = &ended
	}

	if err := w.actions.RecordInstance(ctx, params); err != nil {
		return err
	}

	slog.Info("timed action ran",
		"action", action.Name,
		"completed", completed,
		"took", ended.Sub(started))
	return nil
}

// probe checks the action's target. An action without a target URL is a
// pure heartbeat and always completes.
func (w *Worker) probe(ctx context.Context, targetURL string) (bool, string) {
	if targetURL == "" {
		return true, ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return false, err.Error()
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return false, resp.Status
	}

	return true, resp.Status
}

func (w *Worker) Timeout(job *river.Job[background.ActionRunArgs]) time.Duration {
	return 2 * time.Minute
}
