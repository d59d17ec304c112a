package treatments

import (
	"time"

	"drug-treatments/internal/domain/dosages"
	"drug-treatments/internal/domain/drugs"
)

// Treatment es una prescripción: un medicamento, una pauta de dosificación
// y un rango de fechas inclusivo con su modo de toma. Se crea una vez en el
// orquestador y no se muta después de persistir.
type Treatment struct {
	ID     string
	Drug   drugs.Drug
	Dosage dosages.Dosage

	StartsOn time.Time
	Period   TreatmentPeriod
	StopsOn  time.Time

	Mode DirectionMode
}

// WithinPeriod incluye ambos extremos.
func (t Treatment) WithinPeriod(date time.Time) bool {
	return !date.Before(t.StartsOn) && !date.After(t.StopsOn)
}

// Overlaps detecta si dos tratamientos del mismo medicamento comparten al
// menos un día activo. Drogas distintas nunca solapan; el chequeo es
// simétrico.
func (t Treatment) Overlaps(other Treatment) bool {
	if !t.Drug.SameAs(other.Drug) {
		return false
	}
	return !t.StartsOn.After(other.StopsOn) && !t.StopsOn.Before(other.StartsOn)
}
