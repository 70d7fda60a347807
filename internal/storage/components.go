package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beaconhq/beacon/internal/storage/dto"
)

type ComponentStore struct {
	db *pgxpool.Pool
}

func NewComponentStore(db *pgxpool.Pool) *ComponentStore {
	return &ComponentStore{db: db}
}

const componentColumns = `id, name, description, link, status, enabled, created_at, updated_at`

func scanComponent(row pgx.Row) (dto.Component, error) {
	var c dto.Component
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Link,
		&c.Status,
		&c.Enabled,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (s *ComponentStore) GetByName(ctx context.Context, name string) (dto.Component, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+componentColumns+` FROM components WHERE name = $1 AND enabled`,
		name,
	)

	c, err := scanComponent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return dto.Component{}, ErrNotFound
	}
	if err != nil {
		return dto.Component{}, fmt.Errorf("getting component %q: %w", name, err)
	}

	return c, nil
}

func (s *ComponentStore) List(ctx context.Context) ([]dto.Component, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+componentColumns+` FROM components WHERE enabled ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
	}
	defer rows.Close()

	var components []dto.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}
