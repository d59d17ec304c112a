package treatments

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PeriodUnit es la unidad calendario de un período de tratamiento.
type PeriodUnit string

const (
	UnitDays    PeriodUnit = "Days"
	UnitMonths  PeriodUnit = "Months"
	UnitYears   PeriodUnit = "Years"
	UnitForever PeriodUnit = "Forever"
)

// ParsePeriodUnit acepta el nombre de la unidad sin distinguir mayúsculas.
func ParsePeriodUnit(s string) (PeriodUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "days":
		return UnitDays, nil
	case "months":
		return UnitMonths, nil
	case "years":
		return UnitYears, nil
	case "forever":
		return UnitForever, nil
	default:
		return "", fmt.Errorf("unknown period unit '%s'", s)
	}
}

// días estimados por unidad, para comparar duraciones entre unidades
// distintas (mes = año/12, año = 365.2425 días).
func (u PeriodUnit) estimatedDays() float64 {
	switch u {
	case UnitDays:
		return 1
	case UnitMonths:
		return 365.2425 / 12
	case UnitYears:
		return 365.2425
	case UnitForever:
		return math.Inf(1)
	default:
		return 0
	}
}

// TreatmentPeriod es un valor inmutable: cantidad + unidad.
// Dos períodos son iguales solo si coinciden exactamente ("30 Days" no es
// "1 Months"); la comparación de structs alcanza.
type TreatmentPeriod struct {
	Amount int
	Unit   PeriodUnit
}

// la fecha tope para períodos Forever; mantiene el intervalo
// [startsOn, stopsOn] representable para el chequeo de solapamiento.
var foreverEnd = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// CalcEnd calcula la fecha final inclusiva: el primer día cuenta, así que
// un período de 1 día empieza y termina en la misma fecha.
func (p TreatmentPeriod) CalcEnd(startsOn time.Time) time.Time {
	switch p.Unit {
	case UnitMonths:
		return addMonthsClamped(startsOn, p.Amount).AddDate(0, 0, -1)
	case UnitYears:
		return addMonthsClamped(startsOn, 12*p.Amount).AddDate(0, 0, -1)
	case UnitForever:
		return foreverEnd
	default:
		return startsOn.AddDate(0, 0, p.Amount-1)
	}
}

// IsLonger compara por días totales estimados. Forever nunca es más corto
// que nada; contra otro Forever es igual, no más largo.
func (p TreatmentPeriod) IsLonger(other TreatmentPeriod) bool {
	return p.totalDays() > other.totalDays()
}

func (p TreatmentPeriod) totalDays() float64 {
	if p.Unit == UnitForever {
		return math.Inf(1)
	}
	return float64(p.Amount) * p.Unit.estimatedDays()
}

// ExtendIfDurationLonger arma un período candidato en días y lo devuelve
// solo si es estrictamente más largo; si no, devuelve el período original
// sin cambios.
func (p TreatmentPeriod) ExtendIfDurationLonger(candidateDays int) TreatmentPeriod {
	candidate := TreatmentPeriod{Amount: candidateDays, Unit: UnitDays}
	if candidate.IsLonger(p) {
		return candidate
	}
	return p
}

// suma de meses con clamping a fin de mes (16-ene + 1 mes = 16-feb,
// 31-ene + 1 mes = 28/29-feb), a diferencia de AddDate que normaliza.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()

	total := int(m) - 1 + months
	y += total / 12
	m = time.Month(total%12 + 1)

	if last := lastDayOfMonth(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(y int, m time.Month) int {
	// día 0 del mes siguiente
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween cuenta días calendario entre dos fechas a medianoche UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
