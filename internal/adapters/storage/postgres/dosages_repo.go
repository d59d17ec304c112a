package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"drug-treatments/internal/domain/dosages"
)

type DosagesRepo struct {
	db *sql.DB
}

func NewDosagesRepo(db *sql.DB) *DosagesRepo {
	return &DosagesRepo{db: db}
}

func (r *DosagesRepo) Create(ctx context.Context, d dosages.Dosage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dosages (id, quantity, form, daily_intake_amount)
		VALUES ($1, $2, $3, $4)
	`,
		d.ID,
		d.Dose.Quantity,
		d.Dose.Form,
		d.DailyIntakeAmount,
	)
	return err
}

func (r *DosagesRepo) GetByID(ctx context.Context, id string) (dosages.Dosage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dosages.Dosage{}, dosages.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, quantity, form, daily_intake_amount
		FROM dosages
		WHERE id = $1
	`, id)

	var d dosages.Dosage
	if err := row.Scan(
		&d.ID,
		&d.Dose.Quantity,
		&d.Dose.Form,
		&d.DailyIntakeAmount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dosages.Dosage{}, dosages.ErrNotFound
		}
		return dosages.Dosage{}, err
	}

	return d, nil
}
