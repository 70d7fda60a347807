package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/beaconhq/beacon/internal/badge"
	"github.com/beaconhq/beacon/internal/storage"
	"github.com/beaconhq/beacon/internal/storage/dto"
	"github.com/beaconhq/beacon/internal/web/mocks"
)

const testAPIKey = "test-key"

type testStores struct {
	incidents  *mocks.MockIncidentStore
	metrics    *mocks.MockMetricStore
	actions    *mocks.MockActionStore
	components *mocks.MockComponentStore
}

func newTestHandlers(t *testing.T, now time.Time) (*httpHandlers, testStores) {
	t.Helper()

	ctrl := gomock.NewController(t)
	stores := testStores{
		incidents:  mocks.NewMockIncidentStore(ctrl),
		metrics:    mocks.NewMockMetricStore(ctrl),
		actions:    mocks.NewMockActionStore(ctrl),
		components: mocks.NewMockComponentStore(ctrl),
	}

	h := &httpHandlers{
		cfg:        Config{APIKey: testAPIKey, DaysToShow: 7},
		now:        func() time.Time { return now },
		incidents:  stores.incidents,
		metrics:    stores.metrics,
		actions:    stores.actions,
		components: stores.components,
		colors:     badge.NewResolver(nil),
		renderer:   badge.SVGRenderer{},
	}
	return h, stores
}

func TestIndexAnonymousUsesPublicThreshold(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h, stores := newTestHandlers(t, now)

	stores.incidents.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), dto.VisiblePublic).
		Return(nil, nil)
	stores.incidents.EXPECT().
		CountBefore(gomock.Any(), gomock.Any(), dto.VisiblePublic).
		Return(int64(1), nil)
	stores.actions.EXPECT().
		ListActive(gomock.Any()).
		Return([]dto.TimedAction{{ID: 1, Name: "db-backup"}}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 6, resp.DaysToShow)
	assert.Len(t, resp.AllIncidents, 7)
	assert.Equal(t, "2024-06-10", resp.AllIncidents[0].Date)
	assert.Equal(t, "2024-06-04", resp.AllIncidents[6].Date)
	assert.False(t, resp.CanPageForward)
	assert.True(t, resp.CanPageBackward)
	assert.Equal(t, "2024-06-04", resp.PreviousDate)
	assert.Equal(t, "2024-06-16", resp.NextDate)
	require.Len(t, resp.Actions, 1)
}

func TestIndexAuthenticatedUsesZeroThreshold(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h, stores := newTestHandlers(t, now)

	stores.incidents.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), dto.VisibleAuthenticated).
		Return(nil, nil)
	stores.incidents.EXPECT().
		CountBefore(gomock.Any(), gomock.Any(), dto.VisibleAuthenticated).
		Return(int64(0), nil)
	stores.actions.EXPECT().
		ListActive(gomock.Any()).
		Return(nil, nil)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-API-Key", testAPIKey)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, request)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIndexPagesBackWithStartDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h, stores := newTestHandlers(t, now)

	stores.incidents.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	stores.incidents.EXPECT().
		CountBefore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	stores.actions.EXPECT().
		ListActive(gomock.Any()).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?start_date=2024-06-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2024-06-01", resp.AllIncidents[0].Date)
	assert.True(t, resp.CanPageForward)
}

func TestGetIncidentNotFound(t *testing.T) {
	h, stores := newTestHandlers(t, time.Now())

	stores.incidents.EXPECT().
		Get(gomock.Any(), int64(42), dto.VisiblePublic).
		Return(dto.Incident{}, storage.ErrNotFound)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/incidents/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateIncidentRequiresAuth(t *testing.T) {
	h, _ := newTestHandlers(t, time.Now())

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/incidents", strings.NewReader(`{"name":"x"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateIncidentDuplicateConflicts(t *testing.T) {
	h, stores := newTestHandlers(t, time.Now())

	stores.incidents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(dto.Incident{}, storage.ErrDuplicate)

	request := httptest.NewRequest(http.MethodPost, "/incidents", strings.NewReader(`{"name":"db down","visible":1}`))
	request.Header.Set("X-API-Key", testAPIKey)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, request)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMetricSeriesDefaultsToLastHour(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h, stores := newTestHandlers(t, now)

	metric := dto.Metric{ID: 3, Name: "Response Time", Suffix: "ms"}
	stores.metrics.EXPECT().Get(gomock.Any(), int64(3)).Return(metric, nil)
	stores.metrics.EXPECT().
		PointsLastHour(gomock.Any(), int64(3), now).
		Return([]dto.MetricPoint{{RecordedAt: now, Value: 12.5}}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics/3", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Metric dto.Metric        `json:"metric"`
		Items  []dto.MetricPoint `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Response Time", resp.Metric.Name)
	require.Len(t, resp.Items, 1)
}

func TestMetricSeriesUnknownFilterIsEmpty(t *testing.T) {
	h, stores := newTestHandlers(t, time.Now())

	stores.metrics.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.Metric{ID: 3}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics/3?filter=bogus", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []dto.MetricPoint `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestActionHistory(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h, stores := newTestHandlers(t, now)

	action := dto.TimedAction{ID: 5, Name: "db-backup"}
	completedAt := now.Add(-time.Hour)
	startedAt := completedAt.Add(-330 * time.Second)

	stores.actions.EXPECT().Get(gomock.Any(), int64(5)).Return(action, nil)
	stores.actions.EXPECT().
		ListInstances(gomock.Any(), int64(5), now.AddDate(0, 0, -30), int32(30)).
		Return([]dto.ActionInstance{{
			ActionID:          5,
			StartedAt:         startedAt,
			EndedAt:           completedAt,
			TargetCompletedAt: startedAt.Add(time.Minute),
			CompletedAt:       &completedAt,
			Completed:         true,
		}}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actions/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Action dto.TimedAction `json:"action"`
		Items  []struct {
			TimeTaken int64 `json:"time_taken"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "db-backup", resp.Action.Name)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(330), resp.Items[0].TimeTaken)
}

func TestComponentBadge(t *testing.T) {
	h, stores := newTestHandlers(t, time.Now())

	stores.components.EXPECT().
		GetByName(gomock.Any(), "api").
		Return(dto.Component{ID: 1, Name: "api", Status: 1, Enabled: true}, nil)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/components/api/badge.svg", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "Operational")
}

func TestComponentBadgeUnknownComponent(t *testing.T) {
	h, stores := newTestHandlers(t, time.Now())

	stores.components.EXPECT().
		GetByName(gomock.Any(), "ghost").
		Return(dto.Component{}, storage.ErrNotFound)

	rec := httptest.NewRecorder()
	h.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/components/ghost/badge.svg", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
