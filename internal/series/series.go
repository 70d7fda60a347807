// Package series selects recorded metric points over a named display
// window. It performs no aggregation: the store returns points ordered by
// time and they are passed through verbatim.
package series

import (
	"context"
	"fmt"
	"time"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// Window enumerates the display windows a metric can be viewed over. The
// zero value is unknown and selects nothing.
type Window string

const (
	WindowUnknown  Window = ""
	WindowLastHour Window = "last_hour"
	WindowToday    Window = "today"
	WindowWeek     Window = "week"
	WindowMonth    Window = "month"
)

// ParseWindow maps a filter string to its window. Unrecognized values map
// to WindowUnknown rather than an error: the caller gets an empty series.
func ParseWindow(s string) Window {
	switch s {
	case "last_hour":
		return WindowLastHour
	case "today":
		return WindowToday
	case "week":
		return WindowWeek
	case "month":
		return WindowMonth
	default:
		return WindowUnknown
	}
}

// PointSource is the subset of the metric store the selector needs, one
// method per window.
type PointSource interface {
	PointsLastHour(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsToday(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsThisWeek(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
	PointsThisMonth(ctx context.Context, metricID int64, now time.Time) ([]dto.MetricPoint, error)
}

// Series is a metric's descriptive attributes together with its points for
// one window.
type Series struct {
	Metric dto.Metric        `json:"metric"`
	Items  []dto.MetricPoint `json:"items"`
}

// Select dispatches the window to its store query and wraps the result.
func Select(ctx context.Context, src PointSource, metric dto.Metric, w Window, now time.Time) (Series, error) {
	var (
		points []dto.MetricPoint
		err    error
	)

	switch w {
	case WindowLastHour:
		points, err = src.PointsLastHour(ctx, metric.ID, now)
	case WindowToday:
		points, err = src.PointsToday(ctx, metric.ID, now)
	case WindowWeek:
		points, err = src.PointsThisWeek(ctx, metric.ID, now)
	case WindowMonth:
		points, err = src.PointsThisMonth(ctx, metric.ID, now)
	case WindowUnknown:
		// Unrecognized filters yield an empty series, not an error.
	}
	if err != nil {
		return Series{}, fmt.Errorf("selecting %s points for metric %d: %w", w, metric.ID, err)
	}

	if points == nil {
		points = []dto.MetricPoint{}
	}

	return Series{Metric: metric, Items: points}, nil
}
