package treatments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"drug-treatments/internal/domain/dosages"
	"drug-treatments/internal/domain/drugs"
	"drug-treatments/internal/validation"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo       Repository
	drugRepo   drugs.Repository
	dosageRepo dosages.Repository
	validator  *validation.Validator
}

func NewService(repo Repository, drugRepo drugs.Repository, dosageRepo dosages.Repository) *Service {
	return &Service{
		repo:       repo,
		drugRepo:   drugRepo,
		dosageRepo: dosageRepo,
		validator:  NewPrescribeValidator(),
	}
}

// Prescribe es el caso de uso completo: valida el request crudo, resuelve
// las referencias, arma el período y el modo, extiende el período si el
// taper decreciente lo supera, rechaza solapamientos y persiste.
// Cada paso corta al siguiente; ninguno se reintenta.
func (s *Service) Prescribe(ctx context.Context, req *PrescribeRequest) (Treatment, error) {
	result := s.validator.Validate(req)
	if !result.Valid() {
		return Treatment{}, &Error{Kind: KindValidation, Message: strings.Join(result.Errors, "; ")}
	}

	drug, err := s.drugRepo.GetByID(ctx, req.Parameter(paramDrugID))
	if err != nil {
		if errors.Is(err, drugs.ErrNotFound) {
			return Treatment{}, &Error{
				Kind:    KindReference,
				Message: fmt.Sprintf("No drug found with '%s' id", req.Parameter(paramDrugID)),
			}
		}
		return Treatment{}, err
	}

	dosage, err := s.dosageRepo.GetByID(ctx, req.Parameter(paramDosageID))
	if err != nil {
		if errors.Is(err, dosages.ErrNotFound) {
			return Treatment{}, &Error{
				Kind:    KindReference,
				Message: fmt.Sprintf("No dosage found with '%s' id", req.Parameter(paramDosageID)),
			}
		}
		return Treatment{}, err
	}

	// la validación ya garantizó formato de fecha y entero
	startsOn, err := time.Parse(dateLayout, req.Parameter(paramStartDate))
	if err != nil {
		return Treatment{}, &Error{Kind: KindValidation, Message: err.Error()}
	}
	amount, err := strconv.Atoi(req.Parameter(paramPeriodAmount))
	if err != nil {
		return Treatment{}, &Error{Kind: KindValidation, Message: err.Error()}
	}

	unit, err := ParsePeriodUnit(req.Parameter(paramPeriodUnit))
	if err != nil {
		return Treatment{}, &Error{Kind: KindValidation, Message: err.Error()}
	}
	period := TreatmentPeriod{Amount: amount, Unit: unit}

	mode, err := ResolveDirectionMode(req)
	if err != nil {
		return Treatment{}, &Error{Kind: KindValidation, Message: err.Error()}
	}

	// si el taper decreciente dura más que el período nominal, manda el taper
	if dec, ok := mode.(Decreasing); ok {
		period = period.ExtendIfDurationLonger(dec.DaysUntilLimit(dosage.DailyIntakeAmount))
	}

	t := Treatment{
		ID:       uuid.NewString(),
		Drug:     drug,
		Dosage:   dosage,
		StartsOn: startsOn,
		Period:   period,
		StopsOn:  period.CalcEnd(startsOn),
		Mode:     mode,
	}

	overlaps, err := s.repo.ExistsOverlapping(ctx, t)
	if err != nil {
		return Treatment{}, err
	}
	if overlaps {
		return Treatment{}, &Error{
			Kind: KindOverlap,
			Message: fmt.Sprintf(
				"the treatment being prescribed overlaps with an already prescribed drug: start date %s end date %s",
				t.StartsOn.Format(dateLayout), t.StopsOn.Format(dateLayout)),
		}
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Treatment{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// IsUsedOn responde si el tratamiento se toma en la fecha dada: fuera del
// período nunca; adentro decide la variante del modo.
func (s *Service) IsUsedOn(ctx context.Context, treatmentID string, date time.Time) (bool, error) {
	t, err := s.GetByID(ctx, treatmentID)
	if err != nil {
		return false, err
	}

	if !t.WithinPeriod(date) {
		return false, nil
	}
	return t.Mode.UsedOn(t.StartsOn, date), nil
}

// PrescribedDrugs lista los medicamentos con al menos un tratamiento,
// sin repetidos.
func (s *Service) PrescribedDrugs(ctx context.Context) ([]drugs.Drug, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]drugs.Drug, 0, len(items))
	for _, t := range items {
		if _, ok := seen[t.Drug.ID]; ok {
			continue
		}
		seen[t.Drug.ID] = struct{}{}
		out = append(out, t.Drug)
	}
	return out, nil
}
