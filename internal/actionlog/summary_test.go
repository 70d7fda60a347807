package actionlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

type fakeSource struct {
	instances []dto.ActionInstance
	since     time.Time
	limit     int32
}

func (f *fakeSource) ListInstances(ctx context.Context, actionID int64, since time.Time, limit int32) ([]dto.ActionInstance, error) {
	f.since = since
	f.limit = limit
	return f.instances, nil
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestSummarizeDerivesTimeTaken(t *testing.T) {
	started := ts("2024-06-10 10:00:00")

	tests := []struct {
		name          string
		instance      dto.ActionInstance
		wantTimeTaken int64
		wantCompleted bool
	}{
		{
			name: "completed run",
			instance: dto.ActionInstance{
				StartedAt:         started,
				EndedAt:           ts("2024-06-10 10:10:00"),
				TargetCompletedAt: ts("2024-06-10 10:01:00"),
				CompletedAt:       ptr(ts("2024-06-10 10:05:30")),
				Completed:         true,
			},
			wantTimeTaken: 330,
			wantCompleted: true,
		},
		{
			name: "incomplete run",
			instance: dto.ActionInstance{
				StartedAt:         started,
				EndedAt:           ts("2024-06-10 10:10:00"),
				TargetCompletedAt: ts("2024-06-10 10:01:00"),
			},
			wantTimeTaken: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{instances: []dto.ActionInstance{tc.instance}}

			summary, err := Summarize(context.Background(), src, dto.TimedAction{ID: 1}, ts("2024-06-10 12:00:00"))
			require.NoError(t, err)
			require.Len(t, summary.Items, 1)

			run := summary.Items[0]
			assert.Equal(t, tc.wantTimeTaken, run.TimeTaken)
			assert.Equal(t, tc.wantCompleted, run.Completed)
			assert.Equal(t, "2024-06-10 10:00", run.StartKey)
			assert.Equal(t, "2024-06-10 10:00:00", run.StartedAt)
			if tc.wantCompleted {
				require.NotNil(t, run.CompletedAt)
				assert.Equal(t, "2024-06-10 10:05:30", *run.CompletedAt)
			} else {
				assert.Nil(t, run.CompletedAt)
			}
		})
	}
}

func TestSummarizeEmitsChronologicalOrder(t *testing.T) {
	// Store returns newest first; the summary reverses into ascending order.
	src := &fakeSource{instances: []dto.ActionInstance{
		{StartedAt: ts("2024-06-03 10:00:00"), EndedAt: ts("2024-06-03 10:01:00"), TargetCompletedAt: ts("2024-06-03 10:01:00")},
		{StartedAt: ts("2024-06-02 10:00:00"), EndedAt: ts("2024-06-02 10:01:00"), TargetCompletedAt: ts("2024-06-02 10:01:00")},
		{StartedAt: ts("2024-06-01 10:00:00"), EndedAt: ts("2024-06-01 10:01:00"), TargetCompletedAt: ts("2024-06-01 10:01:00")},
	}}

	summary, err := Summarize(context.Background(), src, dto.TimedAction{ID: 1}, ts("2024-06-10 12:00:00"))
	require.NoError(t, err)

	var keys []string
	for _, run := range summary.Items {
		keys = append(keys, run.StartKey)
	}
	assert.Equal(t, []string{"2024-06-01 10:00", "2024-06-02 10:00", "2024-06-03 10:00"}, keys)
}

func TestSummarizeKeepsSameMinuteRuns(t *testing.T) {
	src := &fakeSource{instances: []dto.ActionInstance{
		{StartedAt: ts("2024-06-01 10:00:45"), EndedAt: ts("2024-06-01 10:01:00"), TargetCompletedAt: ts("2024-06-01 10:01:00")},
		{StartedAt: ts("2024-06-01 10:00:05"), EndedAt: ts("2024-06-01 10:01:00"), TargetCompletedAt: ts("2024-06-01 10:01:00")},
	}}

	summary, err := Summarize(context.Background(), src, dto.TimedAction{ID: 1}, ts("2024-06-10 12:00:00"))
	require.NoError(t, err)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, summary.Items[0].StartKey, summary.Items[1].StartKey)
	assert.NotEqual(t, summary.Items[0].StartedAt, summary.Items[1].StartedAt)
}

func TestSummarizeQueryBounds(t *testing.T) {
	src := &fakeSource{}
	now := ts("2024-06-30 12:00:00")

	_, err := Summarize(context.Background(), src, dto.TimedAction{ID: 1}, now)
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -30), src.since)
	assert.Equal(t, int32(30), src.limit)
}
