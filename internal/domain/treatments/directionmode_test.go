package treatments

import (
	"strings"
	"testing"
	"time"
)

func TestPeriodic_UsedOn_CycleOfFive(t *testing.T) {
	mode := Periodic{Taken: 3, Interval: 2}
	start := day(2017, time.May, 1)

	// 3 días de toma, 2 de pausa, y vuelve a empezar
	wantByOffset := []bool{true, true, true, false, false, true, true, true, false, false, true}

	for offset, want := range wantByOffset {
		date := start.AddDate(0, 0, offset)
		if got := mode.UsedOn(start, date); got != want {
			t.Errorf("UsedOn day %d = %v, want %v", offset, got, want)
		}
	}
}

func TestPeriodic_UsedOn_AcrossYearBoundary(t *testing.T) {
	mode := Periodic{Taken: 3, Interval: 2}
	start := day(2017, time.March, 21)

	// día 365 del tratamiento cierra un ciclo completo (pausa); el 366 abre otro
	if mode.UsedOn(start, day(2018, time.March, 20)) {
		t.Fatal("expected pause day a year in")
	}
	if !mode.UsedOn(start, day(2018, time.March, 21)) {
		t.Fatal("expected intake day starting the next cycle")
	}
}

func TestDaily_UsedOn_EveryDay(t *testing.T) {
	start := day(2017, time.May, 1)
	for offset := 0; offset < 10; offset++ {
		if !(Daily{}).UsedOn(start, start.AddDate(0, 0, offset)) {
			t.Fatalf("expected daily usage on day %d", offset)
		}
	}
}

func TestDecreasing_DaysUntilLimit(t *testing.T) {
	cases := []struct {
		name         string
		dailyIntake  int
		delta, limit int
		want         int
	}{
		{"seven to two by one", 7, 1, 2, 6},
		{"seven to two by two needs the crossing day", 7, 2, 2, 4},
		{"seven to three by two lands exactly", 7, 2, 3, 3},
		{"seven to two by four", 7, 4, 2, 3},
		{"six to two by two", 6, 2, 2, 3},
		// aritmética literal cuando ya se arranca debajo del límite
		{"already below limit", 1, 2, 5, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode := Decreasing{Delta: tc.delta, Limit: tc.limit}
			if got := mode.DaysUntilLimit(tc.dailyIntake); got != tc.want {
				t.Fatalf("DaysUntilLimit(%d) = %d, want %d", tc.dailyIntake, got, tc.want)
			}
		})
	}
}

func TestResolveDirectionMode_AbsentTagDefaultsToDaily(t *testing.T) {
	mode, err := ResolveDirectionMode(NewPrescribeRequest())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if _, ok := mode.(Daily); !ok {
		t.Fatalf("expected Daily, got %T", mode)
	}
}

func TestResolveDirectionMode_Constantly(t *testing.T) {
	req := NewPrescribeRequest().Set(paramDirectionModeType, TagConstantly)

	mode, err := ResolveDirectionMode(req)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if mode.Tag() != TagConstantly {
		t.Fatalf("expected CONSTANTLY, got %s", mode.Tag())
	}
}

func TestResolveDirectionMode_Periodically(t *testing.T) {
	req := NewPrescribeRequest().
		Set(paramDirectionModeType, TagPeriodically).
		Set(paramDirectionModeTaken, "3").
		Set(paramDirectionModeInterval, "2")

	mode, err := ResolveDirectionMode(req)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	p, ok := mode.(Periodic)
	if !ok {
		t.Fatalf("expected Periodic, got %T", mode)
	}
	if p.Taken != 3 || p.Interval != 2 {
		t.Fatalf("expected taken=3 interval=2, got %+v", p)
	}
}

func TestResolveDirectionMode_Decreasingly(t *testing.T) {
	req := NewPrescribeRequest().
		Set(paramDirectionModeType, TagDecreasingly).
		Set(paramDirectionModeDelta, "1").
		Set(paramDirectionModeLimit, "2")

	mode, err := ResolveDirectionMode(req)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	d, ok := mode.(Decreasing)
	if !ok {
		t.Fatalf("expected Decreasing, got %T", mode)
	}
	if d.Delta != 1 || d.Limit != 2 {
		t.Fatalf("expected delta=1 limit=2, got %+v", d)
	}
}

func TestResolveDirectionMode_UnknownTag(t *testing.T) {
	req := NewPrescribeRequest().Set(paramDirectionModeType, "SOMETIMES")

	_, err := ResolveDirectionMode(req)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "unknown direction mode type 'SOMETIMES'" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestResolveDirectionMode_NonIntegerParameter(t *testing.T) {
	req := NewPrescribeRequest().
		Set(paramDirectionModeType, TagPeriodically).
		Set(paramDirectionModeTaken, "three").
		Set(paramDirectionModeInterval, "2")

	_, err := ResolveDirectionMode(req)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), paramDirectionModeTaken) {
		t.Fatalf("expected parameter name in message, got %v", err)
	}
}
