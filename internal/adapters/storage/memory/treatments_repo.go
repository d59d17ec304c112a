package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"drug-treatments/internal/domain/treatments"
)

type treatmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.Treatment
}

func NewTreatmentsRepo() treatments.Repository {
	return &treatmentsRepo{
		byID: make(map[string]treatments.Treatment),
	}
}

func (r *treatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("treatment already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return treatments.Treatment{}, treatments.ErrNotFound
	}
	return t, nil
}

func (r *treatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.Treatment, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartsOn.Equal(out[j].StartsOn) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartsOn.Before(out[j].StartsOn)
	})

	return out, nil
}

// ExistsOverlapping recorre todo lo persistido: con un solo tratamiento
// que solape alcanza para rechazar el candidato.
func (r *treatmentsRepo) ExistsOverlapping(ctx context.Context, candidate treatments.Treatment) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.byID {
		if t.Overlaps(candidate) {
			return true, nil
		}
	}
	return false, nil
}
