package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"

	"github.com/beaconhq/beacon/internal/badge"
	"github.com/beaconhq/beacon/internal/storage"
	"github.com/beaconhq/beacon/internal/storage/dto"
	"github.com/beaconhq/beacon/internal/timeline"
)

type Config struct {
	// APIKey authenticates management calls and unlocks restricted
	// incidents. Empty means every caller is anonymous.
	APIKey string `split_words:"true"`

	// DaysToShow is how many calendar days the index timeline spans.
	DaysToShow int `split_words:"true" default:"7"`

	// BadgeColors overrides the per-category badge hex colors, keyed by
	// "style_reds", "style_blues", "style_greens", "style_yellows".
	BadgeColors map[string]string `split_words:"true"`
}

//go:generate go tool mockgen -source=http.go -destination=mocks/stores_mock.go -package=mocks

// Store interfaces are declared where they are consumed so handler tests
// can swap in mocks.

type IncidentStore interface {
	timeline.IncidentSource
	Get(ctx context.Context, id int64, threshold int32) (dto.Incident, error)
	Create(ctx context.Context, params storage.CreateIncidentParams) (dto.Incident, error)
	ListUpdates(ctx context.Context, incidentID int64) ([]dto.IncidentUpdate, error)
}

type MetricStore interface {
	Get(ctx context.Context, id int64) (dto.Metric, error)
	PointsLastHour(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsToday(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsThisWeek(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsThisMonth(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
}

type ActionStore interface {
	Get(ctx context.Context, id int64) (dto.TimedAction, error)
	ListActive(ctx context.Context) ([]dto.TimedAction, error)
	ListInstances(ctx context.Context, actionID int64, since time.Time, limit int32) ([]dto.ActionInstance, error)
}

type ComponentStore interface {
	GetByName(ctx context.Context, name string) (dto.Component, error)
}

type httpHandlers struct {
	cfg        Config
	now        func() time.Time
	incidents  IncidentStore
	metrics    MetricStore
	actions    ActionStore
	components ComponentStore
	colors     *badge.Resolver
	renderer   badge.Renderer
}

func New(ctx context.Context, cfg Config, db *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) (http.Handler, error) {
	exporter, err := otelprom.New()
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)))

	handlers := &httpHandlers{
		cfg:        cfg,
		now:        time.Now,
		incidents:  storage.NewIncidentStore(db),
		metrics:    storage.NewMetricStore(db),
		actions:    storage.NewActionStore(db),
		components: storage.NewComponentStore(db),
		colors:     badge.NewResolver(cfg.BadgeColors),
		renderer:   badge.SVGRenderer{},
	}

	opts := &riverui.ServerOpts{
		Client: riverClient,
		DB:     db,
		Prefix: "/riverui",
		Logger: slog.Default(),
	}
	riverServer, err := riverui.NewServer(opts)
	if err != nil {
		return nil, err
	}
	if err := riverServer.Start(ctx); err != nil {
		return nil, err
	}

	mux := handlers.routes()
	mux.Handle("/riverui/", riverServer)
	mux.Handle("GET /metrics", promhttp.Handler())

	return otelhttp.NewHandler(mux, "beacon-web"), nil
}

func (h *httpHandlers) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /incidents/{id}", h.getIncident)
	mux.HandleFunc("POST /incidents", h.createIncident)
	mux.HandleFunc("GET /metrics/{id}", h.metricSeries)
	mux.HandleFunc("GET /actions/{id}", h.actionHistory)
	mux.HandleFunc("GET /components/{name}/badge.svg", h.componentBadge)
	mux.HandleFunc("GET /healthz", h.healthz)
	return mux
}

func (h *httpHandlers) authenticated(request *http.Request) bool {
	return h.cfg.APIKey != "" && request.Header.Get("X-API-Key") == h.cfg.APIKey
}

func (h *httpHandlers) healthz(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("ok"))
}
