package treatments

// Claves del request plano de prescripción. El transporte es clave→string:
// una clave ausente no es lo mismo que una clave con valor vacío.
const (
	paramStartDate             = "startDate"
	paramPeriodAmount          = "periodAmount"
	paramPeriodUnit            = "periodUnit"
	paramDrugID                = "drugId"
	paramDosageID              = "dosageId"
	paramDirectionModeType     = "directionModeType"
	paramDirectionModeTaken    = "directionModeTaken"
	paramDirectionModeInterval = "directionModeInterval"
	paramDirectionModeDelta    = "directionModeDelta"
	paramDirectionModeLimit    = "directionModeLimit"
)

// PrescribeRequest implementa validation.Request sobre un map plano.
type PrescribeRequest struct {
	params map[string]string
}

func NewPrescribeRequest() *PrescribeRequest {
	return &PrescribeRequest{params: make(map[string]string)}
}

// Set registra un parámetro crudo y devuelve el request para encadenar.
func (r *PrescribeRequest) Set(name, value string) *PrescribeRequest {
	r.params[name] = value
	return r
}

func (r *PrescribeRequest) Parameter(name string) string {
	return r.params[name]
}

func (r *PrescribeRequest) HasParameter(name string) bool {
	_, ok := r.params[name]
	return ok
}
