package timeline

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// DayBucket holds the incidents whose effective timestamp falls on one
// calendar day. Gap days carry an empty (non-nil) incident list.
type DayBucket struct {
	Date      string         `json:"date"`
	Incidents []dto.Incident `json:"incidents"`
}

// Buckets fetches the window's incidents and groups them per calendar day,
// newest day first. Every day in the window appears exactly once even when
// no incident matched it. Within a bucket the store's ordering is kept:
// scheduled time descending, creation time as tie-break.
func Buckets(ctx context.Context, src IncidentSource, w Window) ([]DayBucket, error) {
	incidents, err := src.ListBetween(ctx, w.RangeStart(), w.RangeEnd(), w.Threshold)
	if err != nil {
		return nil, fmt.Errorf("fetching window incidents: %w", err)
	}

	grouped := make(map[string][]dto.Incident)
	var dates []string
	for _, incident := range incidents {
		date := incident.OccurredAt().Format(DateFormat)
		if _, ok := grouped[date]; !ok {
			dates = append(dates, date)
		}
		grouped[date] = append(grouped[date], incident)
	}

	// Scheduled incidents can land on a day outside the enumerated window,
	// so the day list is the union of grouped days and window days.
	for i := 0; i <= w.DaysToShow; i++ {
		date := w.Anchor.AddDate(0, 0, -i).Format(DateFormat)
		if _, ok := grouped[date]; !ok {
			grouped[date] = []dto.Incident{}
			dates = append(dates, date)
		}
	}

	// YYYY-MM-DD sorts chronologically as a string.
	slices.SortStableFunc(dates, func(a, b string) int {
		return strings.Compare(b, a)
	})

	buckets := make([]DayBucket, len(dates))
	for i, date := range dates {
		buckets[i] = DayBucket{Date: date, Incidents: grouped[date]}
	}

	return buckets, nil
}
