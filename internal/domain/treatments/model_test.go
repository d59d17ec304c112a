package treatments

import (
	"testing"
	"time"

	"drug-treatments/internal/domain/drugs"
)

func testTreatment(drugID string, starts, stops time.Time) Treatment {
	return Treatment{
		ID:       "t-" + drugID,
		Drug:     drugs.Drug{ID: drugID, Name: "x"},
		StartsOn: starts,
		StopsOn:  stops,
	}
}

func TestTreatment_WithinPeriod_InclusiveBounds(t *testing.T) {
	tr := testTreatment("d1", day(2017, time.March, 16), day(2017, time.March, 25))

	if !tr.WithinPeriod(day(2017, time.March, 16)) {
		t.Fatal("expected start date within period")
	}
	if !tr.WithinPeriod(day(2017, time.March, 25)) {
		t.Fatal("expected stop date within period")
	}
	if tr.WithinPeriod(day(2017, time.March, 15)) {
		t.Fatal("expected day before start outside period")
	}
	if tr.WithinPeriod(day(2017, time.March, 26)) {
		t.Fatal("expected day after stop outside period")
	}
}

func TestTreatment_Overlaps(t *testing.T) {
	base := testTreatment("d1", day(2017, time.March, 16), day(2017, time.March, 25))

	cases := []struct {
		name  string
		other Treatment
		want  bool
	}{
		{"contained range", testTreatment("d1", day(2017, time.March, 18), day(2017, time.March, 20)), true},
		{"touching at the end", testTreatment("d1", day(2017, time.March, 25), day(2017, time.March, 30)), true},
		{"touching at the start", testTreatment("d1", day(2017, time.March, 10), day(2017, time.March, 16)), true},
		{"separated by one day", testTreatment("d1", day(2017, time.March, 26), day(2017, time.March, 30)), false},
		{"ends the day before", testTreatment("d1", day(2017, time.March, 10), day(2017, time.March, 15)), false},
		{"other drug same range", testTreatment("d2", day(2017, time.March, 16), day(2017, time.March, 25)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// simétrico
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Fatalf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTreatment_Overlaps_UnsavedDrugsNeverOverlap(t *testing.T) {
	a := testTreatment("", day(2017, time.March, 16), day(2017, time.March, 25))
	b := testTreatment("", day(2017, time.March, 16), day(2017, time.March, 25))

	if a.Overlaps(b) {
		t.Fatal("expected no overlap between drugs without identity")
	}
}
