package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"medications-api/internal/domain/medications"

	"github.com/google/uuid"
)

type medicationRepo struct {
	mu   sync.RWMutex
	byID map[string]storedMedication
	seq  int64
	now  func() time.Time
	last time.Time
}

// storedMedication guarda el orden de inserción para desempatar created_at.
type storedMedication struct {
	m   medications.Medication
	seq int64
}

func NewMedicationRepo() medications.Repository {
	return newMedicationRepo(time.Now)
}

func newMedicationRepo(now func() time.Time) *medicationRepo {
	return &medicationRepo{
		byID: make(map[string]storedMedication),
		now:  now,
	}
}

func (r *medicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]storedMedication, 0, len(r.byID))
	for _, s := range r.byID {
		stored = append(stored, s)
	}

	// created_at desc, igual que el ORDER BY de Postgres
	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if !a.m.CreatedAt.Equal(b.m.CreatedAt) {
			return a.m.CreatedAt.After(b.m.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]medications.Medication, 0, len(stored))
	for _, s := range stored {
		out = append(out, clone(s.m))
	}
	return out, nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return clone(s.m), nil
}

func (r *medicationRepo) Create(ctx context.Context, f medications.Fields) (medications.Medication, error) {
	if err := checkRecord(f); err != nil {
		return medications.Medication{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.tick()
	m := apply(medications.Medication{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}, f, now)

	r.seq++
	r.byID[m.ID] = storedMedication{m: m, seq: r.seq}
	return clone(m), nil
}

func (r *medicationRepo) Update(ctx context.Context, id string, f medications.Fields) (medications.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	// Postgres busca la fila antes de chequear NOT NULL; mantenemos ese orden.
	if err := checkRecord(f); err != nil {
		return medications.Medication{}, err
	}

	s.m = apply(s.m, f, r.tick())
	r.byID[id] = s
	return clone(s.m), nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	delete(r.byID, id)
	return s.m, nil
}

// tick devuelve un timestamp estrictamente creciente; updated_at tiene que
// avanzar aunque el reloj no lo haga entre dos llamadas seguidas.
// Requiere r.mu tomado.
func (r *medicationRepo) tick() time.Time {
	now := r.now().UTC()
	if !now.After(r.last) {
		now = r.last.Add(time.Microsecond)
	}
	r.last = now
	return now
}

func checkRecord(f medications.Fields) error {
	if f.StartDate == nil {
		return fmt.Errorf("%w: start_date is required", medications.ErrInvalidRecord)
	}
	return nil
}

func apply(m medications.Medication, f medications.Fields, now time.Time) medications.Medication {
	m.Name = f.Name
	m.Description = f.Description
	m.StartDate = *f.StartDate
	m.EndDate = f.EndDate
	m.Times = append([]string{}, f.Times...)
	m.IsRegular = f.IsRegular
	m.Quantity = f.Quantity
	m.Form = f.Form
	m.Unit = f.Unit
	m.UpdatedAt = now
	return m
}

func clone(m medications.Medication) medications.Medication {
	m.Times = append([]string{}, m.Times...)
	if m.Description != nil {
		d := *m.Description
		m.Description = &d
	}
	if m.EndDate != nil {
		e := *m.EndDate
		m.EndDate = &e
	}
	return m
}
