package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"drug-treatments/internal/domain/dosages"
	"drug-treatments/internal/domain/drugs"
	"drug-treatments/internal/domain/treatments"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTreatment(id, drugID, start, stop string) treatments.Treatment {
	return treatments.Treatment{
		ID:       id,
		Drug:     drugs.Drug{ID: drugID, Name: "Arsen Alb"},
		Dosage:   dosages.Dosage{ID: "dos-1", Dose: dosages.Dose{Quantity: 1, Form: "pill"}, DailyIntakeAmount: 3},
		StartsOn: date(start),
		Period:   treatments.TreatmentPeriod{Amount: 1, Unit: treatments.UnitMonths},
		StopsOn:  date(stop),
		Mode:     treatments.Daily{},
	}
}

// El repo in-memory se comporta como una base: lo que devuelve una lectura
// es una copia. Mutar el valor leído no cambia lo guardado.
func TestTreatmentsRepo_BehavesLikeDB_ReadIsolation(t *testing.T) {
	repo := NewTreatmentsRepo()
	ctx := context.Background()

	original := sampleTreatment("tr-1", "drug-1", "2017-03-16", "2017-04-15")
	if err := repo.Create(ctx, original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "tr-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	// mutación local agresiva sobre lo leído
	got.Drug.Name = "mutated"
	got.StartsOn = date("1999-01-01")
	got.Period = treatments.TreatmentPeriod{Amount: 99, Unit: treatments.UnitYears}

	again, err := repo.GetByID(ctx, "tr-1")
	if err != nil {
		t.Fatalf("GetByID #2: %v", err)
	}
	if again.Drug.Name != "Arsen Alb" {
		t.Fatalf("stored drug name changed to %q after local mutation", again.Drug.Name)
	}
	if !again.StartsOn.Equal(date("2017-03-16")) {
		t.Fatalf("stored start date changed to %s after local mutation", again.StartsOn)
	}
	if again.Period != original.Period {
		t.Fatalf("stored period changed to %+v after local mutation", again.Period)
	}
}

func TestTreatmentsRepo_BehavesLikeDB_WriteIsolation(t *testing.T) {
	repo := NewTreatmentsRepo()
	ctx := context.Background()

	saved := sampleTreatment("tr-1", "drug-1", "2017-03-16", "2017-04-15")
	if err := repo.Create(ctx, saved); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// mutar la variable del caller después del save no toca lo guardado
	saved.Drug.Name = "mutated-after-save"

	got, err := repo.GetByID(ctx, "tr-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Drug.Name != "Arsen Alb" {
		t.Fatalf("stored drug name changed to %q after caller mutation", got.Drug.Name)
	}
}

func TestTreatmentsRepo_CreateRequiresID(t *testing.T) {
	repo := NewTreatmentsRepo()

	tr := sampleTreatment("", "drug-1", "2017-03-16", "2017-04-15")
	if err := repo.Create(context.Background(), tr); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestTreatmentsRepo_GetByID_NotFound(t *testing.T) {
	repo := NewTreatmentsRepo()

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, treatments.ErrNotFound) {
		t.Fatalf("expected treatments.ErrNotFound, got %v", err)
	}
}

func TestTreatmentsRepo_ExistsOverlapping(t *testing.T) {
	repo := NewTreatmentsRepo()
	ctx := context.Background()

	existing := sampleTreatment("tr-1", "drug-1", "2017-03-16", "2017-04-15")
	if err := repo.Create(ctx, existing); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// mismo drug, intervalos que se tocan en un día
	touching := sampleTreatment("tr-2", "drug-1", "2017-04-15", "2017-04-20")
	ok, err := repo.ExistsOverlapping(ctx, touching)
	if err != nil {
		t.Fatalf("ExistsOverlapping: %v", err)
	}
	if !ok {
		t.Fatalf("expected overlap for touching intervals on same drug")
	}

	// mismo rango exacto, otro drug
	otherDrug := sampleTreatment("tr-3", "drug-2", "2017-03-16", "2017-04-15")
	ok, err = repo.ExistsOverlapping(ctx, otherDrug)
	if err != nil {
		t.Fatalf("ExistsOverlapping: %v", err)
	}
	if ok {
		t.Fatalf("different drugs must never overlap")
	}

	// mismo drug, separado por un día
	disjoint := sampleTreatment("tr-4", "drug-1", "2017-04-16", "2017-04-30")
	ok, err = repo.ExistsOverlapping(ctx, disjoint)
	if err != nil {
		t.Fatalf("ExistsOverlapping: %v", err)
	}
	if ok {
		t.Fatalf("intervals separated by a day must not overlap")
	}
}

func TestDrugsRepo_ListSortedByName(t *testing.T) {
	repo := NewDrugsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, drugs.Drug{ID: "d2", Name: "Vocara"})
	_ = repo.Create(ctx, drugs.Drug{ID: "d1", Name: "Arsen Alb"})

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Arsen Alb" || items[1].Name != "Vocara" {
		t.Fatalf("unexpected listing: %+v", items)
	}
}

func TestDosagesRepo_RoundTrip(t *testing.T) {
	repo := NewDosagesRepo()
	ctx := context.Background()

	d := dosages.Dosage{ID: "dos-1", Dose: dosages.Dose{Quantity: 3, Form: "pill"}, DailyIntakeAmount: 2}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "dos-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalDailyDose() != 6 {
		t.Fatalf("TotalDailyDose = %d, want 6", got.TotalDailyDose())
	}

	_, err = repo.GetByID(ctx, "missing")
	if !errors.Is(err, dosages.ErrNotFound) {
		t.Fatalf("expected dosages.ErrNotFound, got %v", err)
	}
}
