package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"drug-treatments/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	var taken, interval, delta, limit sql.NullInt64
	switch m := t.Mode.(type) {
	case treatments.Periodic:
		taken = sql.NullInt64{Int64: int64(m.Taken), Valid: true}
		interval = sql.NullInt64{Int64: int64(m.Interval), Valid: true}
	case treatments.Decreasing:
		delta = sql.NullInt64{Int64: int64(m.Delta), Valid: true}
		limit = sql.NullInt64{Int64: int64(m.Limit), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (
			id, drug_id, dosage_id,
			starts_on, stops_on,
			period_amount, period_unit,
			mode_type, mode_taken, mode_interval, mode_delta, mode_limit
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		t.ID,
		t.Drug.ID,
		t.Dosage.ID,
		t.StartsOn,
		t.StopsOn,
		t.Period.Amount,
		string(t.Period.Unit),
		t.Mode.Tag(),
		taken,
		interval,
		delta,
		limit,
	)

	// el exclusion constraint del schema cierra la carrera check/insert entre
	// prescripciones concurrentes; acá se traduce a error de negocio
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrExclusionViolation {
		return &treatments.Error{
			Kind: treatments.KindOverlap,
			Message: fmt.Sprintf(
				"the treatment being prescribed overlaps with an already prescribed drug: start date %s end date %s",
				t.StartsOn.Format("2006-01-02"), t.StopsOn.Format("2006-01-02")),
		}
	}
	return err
}

const pgerrExclusionViolation = "23P01"

const treatmentColumns = `
	t.id, t.drug_id, d.name,
	t.dosage_id, ds.quantity, ds.form, ds.daily_intake_amount,
	t.starts_on, t.stops_on,
	t.period_amount, t.period_unit,
	t.mode_type, t.mode_taken, t.mode_interval, t.mode_delta, t.mode_limit
`

func (r *TreatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return treatments.Treatment{}, treatments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM treatments t
		JOIN drugs d ON d.id = t.drug_id
		JOIN dosages ds ON ds.id = t.dosage_id
		WHERE t.id = $1
	`, id)

	t, err := scanTreatment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return treatments.Treatment{}, treatments.ErrNotFound
		}
		return treatments.Treatment{}, err
	}
	return t, nil
}

func (r *TreatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM treatments t
		JOIN drugs d ON d.id = t.drug_id
		JOIN dosages ds ON ds.id = t.dosage_id
		ORDER BY t.starts_on ASC, t.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

// ExistsOverlapping delega el chequeo de intervalos a SQL. La garantía
// fuerte contra la carrera check/insert entre prescripciones concurrentes
// vive en el schema (exclusion constraint sobre drug_id + daterange);
// acá solo preguntamos.
func (r *TreatmentsRepo) ExistsOverlapping(ctx context.Context, candidate treatments.Treatment) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM treatments
			WHERE drug_id = $1
			  AND starts_on <= $3
			  AND stops_on >= $2
		)
	`,
		candidate.Drug.ID,
		candidate.StartsOn,
		candidate.StopsOn,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTreatment(row rowScanner) (treatments.Treatment, error) {
	var (
		t          treatments.Treatment
		periodUnit string
		modeType   string

		taken, interval, delta, limit sql.NullInt64
		startsOn, stopsOn             time.Time
	)

	if err := row.Scan(
		&t.ID,
		&t.Drug.ID,
		&t.Drug.Name,
		&t.Dosage.ID,
		&t.Dosage.Dose.Quantity,
		&t.Dosage.Dose.Form,
		&t.Dosage.DailyIntakeAmount,
		&startsOn,
		&stopsOn,
		&t.Period.Amount,
		&periodUnit,
		&modeType,
		&taken,
		&interval,
		&delta,
		&limit,
	); err != nil {
		return treatments.Treatment{}, err
	}

	// las columnas DATE llegan como time.Time a medianoche UTC
	t.StartsOn = startsOn.UTC()
	t.StopsOn = stopsOn.UTC()
	t.Period.Unit = treatments.PeriodUnit(periodUnit)
	t.Mode = rebuildMode(modeType, taken, interval, delta, limit)

	return t, nil
}

func rebuildMode(tag string, taken, interval, delta, limit sql.NullInt64) treatments.DirectionMode {
	switch tag {
	case treatments.TagPeriodically:
		return treatments.Periodic{
			Taken:    int(taken.Int64),
			Interval: int(interval.Int64),
		}
	case treatments.TagDecreasingly:
		return treatments.Decreasing{
			Delta: int(delta.Int64),
			Limit: int(limit.Int64),
		}
	default:
		return treatments.Daily{}
	}
}
