package timeline

import (
	"context"
	"fmt"
	"time"
)

// Pagination says whether a viewer can move the window in either direction
// and which anchor dates to resubmit to do so.
type Pagination struct {
	CanPageForward  bool   `json:"can_page_forward"`
	CanPageBackward bool   `json:"can_page_backward"`
	PreviousDate    string `json:"previous_date"`
	NextDate        string `json:"next_date"`
}

// Paginate evaluates paging for the window. Forward paging only needs date
// arithmetic; backward paging needs its own store query because incidents
// older than the window were never fetched.
func Paginate(ctx context.Context, src IncidentSource, w Window, now time.Time) (Pagination, error) {
	older, err := src.CountBefore(ctx, w.RangeStart(), w.Threshold)
	if err != nil {
		return Pagination{}, fmt.Errorf("checking for older incidents: %w", err)
	}

	return Pagination{
		CanPageForward:  w.Anchor.Before(midnight(now)),
		CanPageBackward: older > 0,
		PreviousDate:    w.Anchor.AddDate(0, 0, -w.DaysToShow).Format(DateFormat),
		NextDate:        w.Anchor.AddDate(0, 0, w.DaysToShow).Format(DateFormat),
	}, nil
}
