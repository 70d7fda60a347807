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

// ActionStore reads timed actions and records their run instances.
type ActionStore struct {
	db *pgxpool.Pool
}

func NewActionStore(db *pgxpool.Pool) *ActionStore {
	return &ActionStore{db: db}
}

const actionColumns = `id, name, description, component_id, schedule, target_url, completion_secs, active, created_at`

func scanAction(row pgx.Row) (dto.TimedAction, error) {
	var a dto.TimedAction
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.ComponentID,
		&a.Schedule,
		&a.TargetURL,
		&a.CompletionSecs,
		&a.Active,
		&a.CreatedAt,
	)
	return a, err
}

func (s *ActionStore) Get(ctx context.Context, id int64) (dto.TimedAction, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+actionColumns+` FROM timed_actions WHERE id = $1`,
		id,
	)

	a, err := scanAction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return dto.TimedAction{}, ErrNotFound
	}
	if err != nil {
		return dto.TimedAction{}, fmt.Errorf("getting timed action %d: %w", id, err)
	}

	return a, nil
}

func (s *ActionStore) ListActive(ctx context.Context) ([]dto.TimedAction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+actionColumns+` FROM timed_actions WHERE active ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing timed actions: %w", err)
	}
	defer rows.Close()

	var actions []dto.TimedAction
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning timed action: %w", err)
		}
		actions = append(actions, a)
	}

	return actions, rows.Err()
}

// ListInstances returns run instances started on or after since, newest
// first, capped at limit.
func (s *ActionStore) ListInstances(ctx context.Context, actionID int64, since time.Time, limit int32) ([]dto.ActionInstance, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, action_id, started_at, ended_at, target_completed_at, completed_at, completed, output, created_at
		FROM timed_action_instances
		WHERE action_id = $1 AND started_at >= $2
		ORDER BY created_at DESC
		LIMIT $3`,
		actionID, since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing action instances: %w", err)
	}
	defer rows.Close()

	var instances []dto.ActionInstance
	for rows.Next() {
		var in dto.ActionInstance
		err := rows.Scan(
			&in.ID,
			&in.ActionID,
			&in.StartedAt,
			&in.EndedAt,
			&in.TargetCompletedAt,
			&in.CompletedAt,
			&in.Completed,
			&in.Output,
			&in.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning action instance: %w", err)
		}
		instances = append(instances, in)
	}

	return instances, rows.Err()
}

type RecordInstanceParams struct {
	ActionID          int64
	StartedAt         time.Time
	EndedAt           time.Time
	TargetCompletedAt time.Time
	CompletedAt       *time.Time
	Completed         bool
	Output            string
}

func (s *ActionStore) RecordInstance(ctx context.Context, params RecordInstanceParams) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO timed_action_instances
			(action_id, started_at, ended_at, target_completed_at, completed_at, completed, output)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		params.ActionID,
		params.StartedAt,
		params.EndedAt,
		params.TargetCompletedAt,
		params.CompletedAt,
		params.Completed,
		params.Output,
	)
	if err != nil {
		return fmt.Errorf("recording action instance: %w", err)
	}

	return nil
}
