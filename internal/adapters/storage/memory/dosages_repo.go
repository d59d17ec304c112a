package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"drug-treatments/internal/domain/dosages"
)

type dosagesRepo struct {
	mu   sync.RWMutex
	byID map[string]dosages.Dosage
}

func NewDosagesRepo() dosages.Repository {
	return &dosagesRepo{
		byID: make(map[string]dosages.Dosage),
	}
}

func (r *dosagesRepo) Create(ctx context.Context, d dosages.Dosage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dosage id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dosage already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dosagesRepo) GetByID(ctx context.Context, id string) (dosages.Dosage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dosages.Dosage{}, dosages.ErrNotFound
	}
	return d, nil
}
