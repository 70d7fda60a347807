// Package timeline computes the rolling day-window a status page shows:
// which calendar days are in view, which incidents land on each day, and
// whether the viewer can page further in either direction.
package timeline

import (
	"context"
	"time"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// DateFormat is the wire format for anchor and bucket dates.
const DateFormat = "2006-01-02"

//go:generate go tool mockgen -source=timeline.go -destination=mocks/incident_source_mock.go -package=mocks

// IncidentSource is the subset of the incident store the timeline needs.
type IncidentSource interface {
	ListBetween(ctx context.Context, from, to time.Time, threshold int32) ([]dto.Incident, error)
	CountBefore(ctx context.Context, before time.Time, threshold int32) (int64, error)
}

// Window is a contiguous span of calendar days ending on Anchor. Anchor is
// always midnight in the clock's location and never exceeds the clock's
// current day.
type Window struct {
	Anchor     time.Time
	DaysToShow int
	Threshold  int32
}

// ResolveWindow computes the window for a request. A requestedStart that
// does not parse as YYYY-MM-DD, or that is not strictly before now's
// calendar day, is silently discarded and the window anchors on today.
// Authenticated callers see incidents of every visibility level.
func ResolveWindow(now time.Time, requestedStart string, configuredDays int, authenticated bool) Window {
	today := midnight(now)

	anchor := today
	if t, err := time.ParseInLocation(DateFormat, requestedStart, now.Location()); err == nil && t.Before(today) {
		anchor = t
	}

	days := configuredDays - 1
	if days < 0 {
		days = 0
	}

	threshold := dto.VisiblePublic
	if authenticated {
		threshold = dto.VisibleAuthenticated
	}

	return Window{
		Anchor:     anchor,
		DaysToShow: days,
		Threshold:  threshold,
	}
}

// RangeStart is the first instant of the oldest day in the window.
func (w Window) RangeStart() time.Time {
	return w.Anchor.AddDate(0, 0, -w.DaysToShow)
}

// RangeEnd is the last whole second of the anchor day.
func (w Window) RangeEnd() time.Time {
	return w.Anchor.AddDate(0, 0, 1).Add(-time.Second)
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
