// Package actionlog summarizes the recent run history of a timed action.
package actionlog

import (
	"context"
	"fmt"
	"time"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

const (
	lookbackDays = 30
	maxInstances = 30

	minuteFormat = "2006-01-02 15:04"
	stampFormat  = "2006-01-02 15:04:05"
)

// InstanceSource is the subset of the action store the summarizer needs.
type InstanceSource interface {
	ListInstances(ctx context.Context, actionID int64, since time.Time, limit int32) ([]dto.ActionInstance, error)
}

// Run is one summarized instance. StartKey is the minute-precision start
// time the legacy output was keyed on; it is carried as a field so two
// runs starting in the same minute both survive.
type Run struct {
	StartKey          string  `json:"start_key"`
	StartedAt         string  `json:"started_at"`
	EndedAt           string  `json:"ended_at"`
	TargetCompletedAt string  `json:"target_completed_at"`
	CompletedAt       *string `json:"completed_at"`
	Completed         bool    `json:"completed"`
	TimeTaken         int64   `json:"time_taken"`
}

// Summary is an action's attributes with its summarized runs in
// chronological order. The raw instance collection is deliberately not
// repeated here.
type Summary struct {
	Action dto.TimedAction `json:"action"`
	Items  []Run           `json:"items"`
}

// Summarize fetches the instances started in the last 30 days, newest
// first and capped at 30, and emits them oldest first with derived
// duration and formatted timestamp fields.
func Summarize(ctx context.Context, src InstanceSource, action dto.TimedAction, now time.Time) (Summary, error) {
	since := now.AddDate(0, 0, -lookbackDays)
	instances, err := src.ListInstances(ctx, action.ID, since, maxInstances)
	if err != nil {
		return Summary{}, fmt.Errorf("listing instances for action %d: %w", action.ID, err)
	}

	runs := make([]Run, 0, len(instances))
	for i := len(instances) - 1; i >= 0; i-- {
		runs = append(runs, summarizeInstance(instances[i]))
	}

	return Summary{Action: action, Items: runs}, nil
}

func summarizeInstance(in dto.ActionInstance) Run {
	run := Run{
		StartKey:          in.StartedAt.Format(minuteFormat),
		StartedAt:         in.StartedAt.Format(stampFormat),
		EndedAt:           in.EndedAt.Format(stampFormat),
		TargetCompletedAt: in.TargetCompletedAt.Format(stampFormat),
		Completed:         in.Completed,
	}

	if in.Completed && in.CompletedAt != nil {
		completed := in.CompletedAt.Format(stampFormat)
		run.CompletedAt = &completed
		run.TimeTaken = int64(in.CompletedAt.Sub(in.StartedAt).Seconds())
	}

	return run
}
