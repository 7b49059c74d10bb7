package medications

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")

	// ErrInvalidRecord lo devuelven los stores cuando la fila viola una
	// restricción (p.ej. start_date NULL en un update).
	ErrInvalidRecord = errors.New("invalid medication record")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// Create exige name y start_date; el resto recibe sus valores por defecto.
func (s *Service) Create(ctx context.Context, f Fields) (Medication, error) {
	if f.Name == "" || f.StartDate == nil {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, withDefaults(f))
}

// Update no valida presencia (a diferencia de Create): un name ausente se
// guarda vacío y un start_date ausente lo rechaza el store.
func (s *Service) Update(ctx context.Context, id string, f Fields) (Medication, error) {
	return s.repo.Update(ctx, strings.TrimSpace(id), withDefaults(f))
}

func (s *Service) Delete(ctx context.Context, id string) (Medication, error) {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func withDefaults(f Fields) Fields {
	if f.Description != nil && *f.Description == "" {
		f.Description = nil
	}
	if f.Times == nil {
		f.Times = []string{}
	}
	if f.Quantity == 0 {
		f.Quantity = DefaultQuantity
	}
	if f.Form == "" {
		f.Form = DefaultForm
	}
	if f.Unit == "" {
		f.Unit = DefaultUnit
	}
	return f
}
