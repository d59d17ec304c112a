package treatments

import (
	"fmt"
	"strconv"
	"time"

	"drug-treatments/internal/validation"
)

// DirectionMode es la pauta de toma de un tratamiento. Suma de tres
// variantes cerradas: combinaciones inválidas de parámetros no son
// representables.
type DirectionMode interface {
	// Tag devuelve el discriminante externo de la variante.
	Tag() string

	// UsedOn responde si el tratamiento se toma en una fecha que ya se
	// sabe dentro del período del tratamiento.
	UsedOn(startsOn, date time.Time) bool
}

// Tags externos, sensibles a mayúsculas.
const (
	TagConstantly   = "CONSTANTLY"
	TagPeriodically = "PERIODICALLY"
	TagDecreasingly = "DECREASINGLY"
)

// KnownModeTag reconoce los tres discriminantes válidos.
func KnownModeTag(tag string) bool {
	switch tag {
	case TagConstantly, TagPeriodically, TagDecreasingly:
		return true
	}
	return false
}

// Daily: se toma todos los días del período.
type Daily struct{}

func (Daily) Tag() string { return TagConstantly }

func (Daily) UsedOn(startsOn, date time.Time) bool { return true }

// Periodic alterna ciclos de toma y pausa: los primeros Taken días de cada
// ventana de Taken+Interval días son activos.
type Periodic struct {
	Taken    int
	Interval int
}

func (Periodic) Tag() string { return TagPeriodically }

func (m Periodic) CycleLength() int { return m.Taken + m.Interval }

func (m Periodic) UsedOn(startsOn, date time.Time) bool {
	return m.dayNumberInCycle(startsOn, date) <= m.Taken
}

// ordinal 1-based del día dentro del ciclo: T = días(inicio→fecha)+1,
// r = T mod L; el día L del ciclo da resto 0.
func (m Periodic) dayNumberInCycle(startsOn, date time.Time) int {
	total := daysBetween(startsOn, date) + 1

	r := total % m.CycleLength()
	if r == 0 {
		return m.CycleLength()
	}
	return r
}

// Decreasing baja la cantidad diaria en Delta por día hasta llegar a Limit.
// La reducción afecta la duración del tratamiento, no el on/off por día:
// dentro del período (posiblemente extendido) se toma todos los días.
type Decreasing struct {
	Delta int
	Limit int
}

func (Decreasing) Tag() string { return TagDecreasingly }

func (Decreasing) UsedOn(startsOn, date time.Time) bool { return true }

// DaysUntilLimit calcula cuántos días lleva bajar de dailyIntakeAmount a
// Limit inclusive, restando Delta por día; si la resta no cae justo, hace
// falta un día más para cruzar el límite. La aritmética se aplica literal
// también con dailyIntakeAmount < Limit (comportamiento sin especificar,
// documentado por test).
func (m Decreasing) DaysUntilLimit(dailyIntakeAmount int) int {
	remaining := dailyIntakeAmount - m.Limit

	days := remaining/m.Delta + 1
	if remaining%m.Delta != 0 {
		days++
	}
	return days
}

// ResolveDirectionMode mapea (tag, parámetros crudos) a una variante.
// Función pura del request: tag ausente por completo resuelve a Daily;
// tag presente pero desconocido es error del caller (la asimetría es
// comportamiento observado del sistema, no la "arreglamos").
func ResolveDirectionMode(req validation.Request) (DirectionMode, error) {
	if !req.HasParameter(paramDirectionModeType) {
		return Daily{}, nil
	}

	tag := req.Parameter(paramDirectionModeType)
	switch tag {
	case TagConstantly:
		return Daily{}, nil

	case TagPeriodically:
		taken, err := intParameter(req, paramDirectionModeTaken)
		if err != nil {
			return nil, err
		}
		interval, err := intParameter(req, paramDirectionModeInterval)
		if err != nil {
			return nil, err
		}
		return Periodic{Taken: taken, Interval: interval}, nil

	case TagDecreasingly:
		delta, err := intParameter(req, paramDirectionModeDelta)
		if err != nil {
			return nil, err
		}
		limit, err := intParameter(req, paramDirectionModeLimit)
		if err != nil {
			return nil, err
		}
		return Decreasing{Delta: delta, Limit: limit}, nil

	default:
		return nil, fmt.Errorf("unknown direction mode type '%s'", tag)
	}
}

func intParameter(req validation.Request, name string) (int, error) {
	n, err := strconv.Atoi(req.Parameter(name))
	if err != nil {
		return 0, fmt.Errorf("'%s' is not an integer: '%s'", name, req.Parameter(name))
	}
	return n, nil
}
