package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"drug-treatments/internal/domain/drugs"
)

type DrugsRepo struct {
	db *sql.DB
}

func NewDrugsRepo(db *sql.DB) *DrugsRepo {
	return &DrugsRepo{db: db}
}

func (r *DrugsRepo) Create(ctx context.Context, d drugs.Drug) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drugs (id, name) VALUES ($1, $2)
	`, d.ID, d.Name)
	return err
}

func (r *DrugsRepo) GetByID(ctx context.Context, id string) (drugs.Drug, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return drugs.Drug{}, drugs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM drugs WHERE id = $1
	`, id)

	var d drugs.Drug
	if err := row.Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return drugs.Drug{}, drugs.ErrNotFound
		}
		return drugs.Drug{}, err
	}

	return d, nil
}

func (r *DrugsRepo) List(ctx context.Context) ([]drugs.Drug, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name FROM drugs ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]drugs.Drug, 0)
	for rows.Next() {
		var d drugs.Drug
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
