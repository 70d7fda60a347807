package dto

import (
	"time"
)

// Visibility levels. Higher values are visible to a wider audience:
// incidents below a caller's threshold are never returned to it.
const (
	VisibleAuthenticated int32 = 0
	VisiblePublic        int32 = 1
)

type Component struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	Status      int32      `json:"status"`
	Enabled     bool       `json:"enabled"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Incident struct {
	ID          int64      `json:"id"`
	ComponentID *int64     `json:"component_id,omitempty"`
	Name        string     `json:"name"`
	Status      int32      `json:"status"`
	Message     string     `json:"message"`
	Visible     int32      `json:"visible"`
	Scheduled   bool       `json:"scheduled"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// OccurredAt is the timestamp an incident is grouped and ordered by:
// the scheduled time for maintenance windows, creation time otherwise.
func (i Incident) OccurredAt() time.Time {
	if i.Scheduled && i.ScheduledAt != nil {
		return *i.ScheduledAt
	}
	return i.CreatedAt
}

type IncidentUpdate struct {
	ID         int64     `json:"id"`
	IncidentID int64     `json:"incident_id"`
	Status     int32     `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type Metric struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Suffix       string  `json:"suffix"`
	Description  string  `json:"description,omitempty"`
	DefaultValue float64 `json:"default_value"`
	DisplayChart bool    `json:"display_chart"`
}

type MetricPoint struct {
	RecordedAt time.Time `json:"recorded_at"`
	Value      float64   `json:"value"`
}

type TimedAction struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ComponentID    *int64    `json:"component_id,omitempty"`
	Schedule       string    `json:"schedule"`
	TargetURL      string    `json:"target_url,omitempty"`
	CompletionSecs int32     `json:"completion_secs"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

type ActionInstance struct {
	ID                int64      `json:"id"`
	ActionID          int64      `json:"action_id"`
	StartedAt         time.Time  `json:"started_at"`
	EndedAt           time.Time  `json:"ended_at"`
	TargetCompletedAt time.Time  `json:"target_completed_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Completed         bool       `json:"completed"`
	Output            string     `json:"output,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
