package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// MetricStore reads metric definitions and their recorded points. Each
// named display window gets its own method so the dispatch layer stays a
// pure enum-to-query mapping.
type MetricStore struct {
	db *pgxpool.Pool
}

func NewMetricStore(db *pgxpool.Pool) *MetricStore {
	return &MetricStore{db: db}
}

func (s *MetricStore) Get(ctx context.Context, id int64) (dto.Metric, error) {
	var m dto.Metric
	err := s.db.QueryRow(ctx, `
		SELECT id, name, suffix, description, default_value, display_chart
		FROM metrics
		WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Suffix, &m.Description, &m.DefaultValue, &m.DisplayChart)
	if errors.Is(err, pgx.ErrNoRows) {
		return dto.Metric{}, ErrNotFound
	}
	if err != nil {
		return dto.Metric{}, fmt.Errorf("getting metric %d: %w", id, err)
	}

	return m, nil
}

func (s *MetricStore) List(ctx context.Context) ([]dto.Metric, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, suffix, description, default_value, display_chart
		FROM metrics
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}
	defer rows.Close()

	var metrics []dto.Metric
	for rows.Next() {
		var m dto.Metric
		if err := rows.Scan(&m.ID, &m.Name, &m.Suffix, &m.Description, &m.DefaultValue, &m.DisplayChart); err != nil {
			return nil, fmt.Errorf("scanning metric: %w", err)
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}

func (s *MetricStore) PointsLastHour(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error) {
	return s.pointsSince(ctx, metricID, now.Add(-time.Hour))
}

func (s *MetricStore) PointsToday(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error) {
	year, month, day := now.Date()
	return s.pointsSince(ctx, metricID, time.Date(year, month, day, 0, 0, 0, 0, now.Location()))
}

func (s *MetricStore) PointsThisWeek(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error) {
	return s.pointsSince(ctx, metricID, now.AddDate(0, 0, -7))
}

func (s *MetricStore) PointsThisMonth(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error) {
	return s.pointsSince(ctx, metricID, now.AddDate(0, -1, 0))
}

func (s *MetricStore) pointsSince(ctx context.Context, metricID int64, since time.Time) ([]dto.MetricPoint, error) {
	rows, err := s.db.Query(ctx, `
		SELECT recorded_at, value
		FROM metric_points
		WHERE metric_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at`,
		metricID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("listing metric points: %w", err)
	}
	defer rows.Close()

	var points []dto.MetricPoint
	for rows.Next() {
		var p dto.MetricPoint
		if err := rows.Scan(&p.RecordedAt, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning metric point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

func (s *MetricStore) RecordPoint(ctx context.Context, metricID int64, value float64, recordedAt time.Time) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO metric_points (metric_id, value, recorded_at) VALUES ($1, $2, $3)`,
		metricID, value, recordedAt,
	)
	if err != nil {
		return fmt.Errorf("recording metric point: %w", err)
	}

	return nil
}
