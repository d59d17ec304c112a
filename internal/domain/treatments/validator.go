package treatments

import "drug-treatments/internal/validation"

// NewPrescribeValidator arma el árbol de reglas del request de prescripción.
//
// La regla de directionModeType lleva precondición de presencia: un request
// sin la clave valida limpio (el orquestador resuelve Daily por defecto),
// mientras que una clave presente pero vacía o con tag desconocido falla.
// Las sub-reglas de parámetros solo corren para el tag que las necesita.
func NewPrescribeValidator() *validation.Validator {
	labels := map[string]string{
		paramStartDate:             "Start Date",
		paramPeriodAmount:          "Amount of Treatment Period",
		paramPeriodUnit:            "Unit of Treatment Period",
		paramDrugID:                "Drug Id",
		paramDosageID:              "Dosage Id",
		paramDirectionModeType:     "Direction Mode Type",
		paramDirectionModeTaken:    "Amount of Taken for the Periodical Direction",
		paramDirectionModeInterval: "Amount of Interval for the Periodical Direction",
		paramDirectionModeDelta:    "Amount of Delta for the Decreasing Direction",
		paramDirectionModeLimit:    "Amount of Limit for the Decreasing Direction",
	}

	isPeriodical := func(req validation.Request) bool {
		return req.Parameter(paramDirectionModeType) == TagPeriodically
	}
	isDecreasing := func(req validation.Request) bool {
		return req.Parameter(paramDirectionModeType) == TagDecreasingly
	}
	modeTagPresent := func(req validation.Request) bool {
		return req.HasParameter(paramDirectionModeType)
	}

	requiredCycleAmount := func(attribute string) validation.Rule {
		return validation.NewRule(attribute,
			validation.RequireNonEmpty(),
			validation.CheckIntegerFormat(),
			validation.RequirePositiveNumber(),
			validation.RequireNonZero(),
		).When(isPeriodical)
	}

	directionModeRule := validation.NewRule(paramDirectionModeType,
		validation.RequireNonEmpty(),
		validation.AssertTruth(KnownModeTag),
	).When(modeTagPresent).
		Sub(requiredCycleAmount(paramDirectionModeTaken)).
		Sub(requiredCycleAmount(paramDirectionModeInterval)).
		Sub(validation.NewRule(paramDirectionModeDelta,
			validation.CheckIntegerFormat()).When(isDecreasing)).
		Sub(validation.NewRule(paramDirectionModeLimit,
			validation.CheckIntegerFormat()).When(isDecreasing))

	return validation.New(labels,
		validation.NewRule(paramStartDate,
			validation.RequireNonEmpty(),
			validation.CheckDateFormat(),
		),
		validation.NewRule(paramPeriodAmount,
			validation.RequireNonEmpty(),
			validation.CheckIntegerFormat(),
			validation.RequirePositiveNumber(),
			validation.RequireNonZero(),
		),
		validation.NewRule(paramPeriodUnit, validation.RequireNonEmpty()),
		validation.NewRule(paramDrugID, validation.RequireNonEmpty()),
		validation.NewRule(paramDosageID, validation.RequireNonEmpty()),
		directionModeRule,
	)
}
