package dosages

import "fmt"

// Dose es la toma individual: cantidad + forma farmacéutica ("3 pill").
type Dose struct {
	Quantity int
	Form     string
}

// Dosage describe cómo se toma un medicamento: una dosis y cuántas
// ingestas por día.
type Dosage struct {
	ID                string
	Dose              Dose
	DailyIntakeAmount int
}

// TotalDailyDose es la cantidad total ingerida por día.
func (d Dosage) TotalDailyDose() int {
	return d.Dose.Quantity * d.DailyIntakeAmount
}

// Regimen arma la descripción humana de la pauta.
func (d Dosage) Regimen() string {
	return fmt.Sprintf("%d %s %d times a day", d.Dose.Quantity, d.Dose.Form, d.DailyIntakeAmount)
}
