package drugs

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("drug not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Drug, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Drug{}, ErrInvalidInput
	}

	d := Drug{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(in.Name),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Drug{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Drug, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Drug{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Drug, error) {
	return s.repo.List(ctx)
}
