package tests

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/storage"
	"github.com/beaconhq/beacon/internal/storage/dto"
	"github.com/beaconhq/beacon/internal/timeline"
)

func insertIncident(t *testing.T, db *pgxpool.Pool, name string, visible int32, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO incidents (name, status, message, visible, created_at)
		VALUES ($1, 1, '', $2, $3)`,
		name, visible, createdAt,
	)
	require.NoError(t, err)
}

func TestTimelineAgainstStore(t *testing.T) {
	db := SetupDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	insertIncident(t, db, "public today", dto.VisiblePublic, now.Add(-time.Minute))
	insertIncident(t, db, "restricted today", dto.VisibleAuthenticated, now.Add(-2*time.Minute))
	insertIncident(t, db, "public last week", dto.VisiblePublic, now.AddDate(0, 0, -8))

	store := storage.NewIncidentStore(db)
	window := timeline.ResolveWindow(now, "", 7, false)

	buckets, err := timeline.Buckets(ctx, store, window)
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	// The anonymous window holds exactly the one public incident from today.
	assert.Equal(t, today.Format(timeline.DateFormat), buckets[0].Date)
	require.Len(t, buckets[0].Incidents, 1)
	assert.Equal(t, "public today", buckets[0].Incidents[0].Name)
	for _, b := range buckets[1:] {
		assert.Empty(t, b.Incidents)
	}

	// The authenticated window additionally holds the restricted incident,
	// ordered newest first.
	authWindow := timeline.ResolveWindow(now, "", 7, true)
	authBuckets, err := timeline.Buckets(ctx, store, authWindow)
	require.NoError(t, err)
	require.Len(t, authBuckets[0].Incidents, 2)
	assert.Equal(t, "public today", authBuckets[0].Incidents[0].Name)
	assert.Equal(t, "restricted today", authBuckets[0].Incidents[1].Name)

	// The week-old incident is outside the window but enables backward paging.
	pagination, err := timeline.Paginate(ctx, store, window, now)
	require.NoError(t, err)
	assert.False(t, pagination.CanPageForward)
	assert.True(t, pagination.CanPageBackward)
}

func TestIncidentStoreCreateAndGet(t *testing.T) {
	db := SetupDB(t)
	ctx := context.Background()
	store := storage.NewIncidentStore(db)

	created, err := store.Create(ctx, storage.CreateIncidentParams{
		Name:    "API outage",
		Status:  1,
		Message: "investigating",
		Visible: dto.VisiblePublic,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := store.Get(ctx, created.ID, dto.VisiblePublic)
	require.NoError(t, err)
	assert.Equal(t, "API outage", got.Name)

	// A restricted incident stays hidden from public reads.
	restricted, err := store.Create(ctx, storage.CreateIncidentParams{
		Name:    "internal only",
		Visible: dto.VisibleAuthenticated,
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, restricted.ID, dto.VisiblePublic)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Get(ctx, restricted.ID, dto.VisibleAuthenticated)
	assert.NoError(t, err)
}

func TestMetricPointWindows(t *testing.T) {
	db := SetupDB(t)
	ctx := context.Background()
	store := storage.NewMetricStore(db)

	var metricID int64
	err := db.QueryRow(ctx, `
		INSERT INTO metrics (name, suffix, default_value, display_chart)
		VALUES ('Response Time', 'ms', 0, TRUE)
		RETURNING id`,
	).Scan(&metricID)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, store.RecordPoint(ctx, metricID, 10, now.Add(-30*time.Minute)))
	require.NoError(t, store.RecordPoint(ctx, metricID, 20, now.AddDate(0, 0, -3)))
	require.NoError(t, store.RecordPoint(ctx, metricID, 30, now.AddDate(0, 0, -20)))

	lastHour, err := store.PointsLastHour(ctx, metricID, now)
	require.NoError(t, err)
	require.Len(t, lastHour, 1)
	assert.Equal(t, float64(10), lastHour[0].Value)

	week, err := store.PointsThisWeek(ctx, metricID, now)
	require.NoError(t, err)
	assert.Len(t, week, 2)

	month, err := store.PointsThisMonth(ctx, metricID, now)
	require.NoError(t, err)
	assert.Len(t, month, 3)

	// Points come back in chronological order.
	for i := 1; i < len(month); i++ {
		assert.True(t, month[i-1].RecordedAt.Before(month[i].RecordedAt))
	}
}

func TestActionInstanceRoundTrip(t *testing.T) {
	db := SetupDB(t)
	ctx := context.Background()
	store := storage.NewActionStore(db)

	var actionID int64
	err := db.QueryRow(ctx, `
		INSERT INTO timed_actions (name, schedule, completion_secs)
		VALUES ('db-backup', '0 3 * * *', 60)
		RETURNING id`,
	).Scan(&actionID)
	require.NoError(t, err)

	started := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	completed := started.Add(330 * time.Second)
	require.NoError(t, store.RecordInstance(ctx, storage.RecordInstanceParams{
		ActionID:          actionID,
		StartedAt:         started,
		EndedAt:           completed,
		TargetCompletedAt: started.Add(time.Minute),
		CompletedAt:       &completed,
		Completed:         true,
	}))

	instances, err := store.ListInstances(ctx, actionID, started.AddDate(0, 0, -30), 30)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.True(t, instances[0].Completed)
	assert.Equal(t, started.Unix(), instances[0].StartedAt.Unix())
}
