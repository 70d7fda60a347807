package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

// ErrDuplicate is returned when a create hits a unique constraint.
var ErrDuplicate = errors.New("already exists")

// ErrNotFound is returned when a row does not exist or is not visible
// to the caller.
var ErrNotFound = errors.New("not found")

// IncidentStore reads and writes incidents and their updates.
type IncidentStore struct {
	db *pgxpool.Pool
}

func NewIncidentStore(db *pgxpool.Pool) *IncidentStore {
	return &IncidentStore{db: db}
}

const incidentColumns = `id, component_id, name, status, message, visible, scheduled, scheduled_at, created_at`

func scanIncident(row pgx.Row) (dto.Incident, error) {
	var i dto.Incident
	err := row.Scan(
		&i.ID,
		&i.ComponentID,
		&i.Name,
		&i.Status,
		&i.Message,
		&i.Visible,
		&i.Scheduled,
		&i.ScheduledAt,
		&i.CreatedAt,
	)
	return i, err
}

// ListBetween returns incidents created within [from, to] whose visibility
// is at least threshold, ordered by scheduled_at descending with created_at
// as the tie-break. This ordering governs within-bucket order on the
// timeline, so it must happen here and not in memory.
func (s *IncidentStore) ListBetween(ctx context.Context, from, to time.Time, threshold int32) ([]dto.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE visible >= $1 AND created_at BETWEEN $2 AND $3
		ORDER BY scheduled_at DESC NULLS LAST, created_at DESC`

	rows, err := s.db.Query(ctx, query, threshold, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing incidents: %w", err)
	}
	defer rows.Close()

	var incidents []dto.Incident
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning incident: %w", err)
		}
		incidents = append(incidents, i)
	}

	return incidents, rows.Err()
}

// CountBefore reports how many matching incidents were created strictly
// before the given instant.
func (s *IncidentStore) CountBefore(ctx context.Context, before time.Time, threshold int32) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM incidents WHERE visible >= $1 AND created_at < $2`,
		threshold, before,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting incidents: %w", err)
	}

	return count, nil
}

func (s *IncidentStore) Get(ctx context.Context, id int64, threshold int32) (dto.Incident, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE id = $1 AND visible >= $2`,
		id, threshold,
	)

	i, err := scanIncident(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return dto.Incident{}, ErrNotFound
	}
	if err != nil {
		return dto.Incident{}, fmt.Errorf("getting incident %d: %w", id, err)
	}

	return i, nil
}

type CreateIncidentParams struct {
	ComponentID *int64     `json:"component_id"`
	Name        string     `json:"name"`
	Status      int32      `json:"status"`
	Message     string     `json:"message"`
	Visible     int32      `json:"visible"`
	Scheduled   bool       `json:"scheduled"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (s *IncidentStore) Create(ctx context.Context, params CreateIncidentParams) (dto.Incident, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO incidents (component_id, name, status, message, visible, scheduled, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+incidentColumns,
		params.ComponentID,
		params.Name,
		params.Status,
		params.Message,
		params.Visible,
		params.Scheduled,
		params.ScheduledAt,
	)

	i, err := scanIncident(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return dto.Incident{}, ErrDuplicate
	}
	if err != nil {
		return dto.Incident{}, fmt.Errorf("creating incident: %w", err)
	}

	return i, nil
}

func (s *IncidentStore) ListUpdates(ctx context.Context, incidentID int64) ([]dto.IncidentUpdate, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, incident_id, status, message, created_at
		FROM incident_updates
		WHERE incident_id = $1
		ORDER BY created_at DESC`,
		incidentID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing incident updates: %w", err)
	}
	defer rows.Close()

	var updates []dto.IncidentUpdate
	for rows.Next() {
		var u dto.IncidentUpdate
		if err := rows.Scan(&u.ID, &u.IncidentID, &u.Status, &u.Message, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning incident update: %w", err)
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}
