package dosages

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dosage not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Quantity          int
	Form              string
	DailyIntakeAmount int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dosage, error) {
	if in.Quantity <= 0 {
		return Dosage{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Form) == "" {
		return Dosage{}, ErrInvalidInput
	}
	if in.DailyIntakeAmount <= 0 {
		return Dosage{}, ErrInvalidInput
	}

	d := Dosage{
		ID: uuid.NewString(),
		Dose: Dose{
			Quantity: in.Quantity,
			Form:     strings.TrimSpace(in.Form),
		},
		DailyIntakeAmount: in.DailyIntakeAmount,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dosage{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dosage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dosage{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
