package memory

import (
	"context"
	"testing"
	"time"

	"medications-api/internal/domain/medications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(name string) medications.Fields {
	sd := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return medications.Fields{
		Name:      name,
		StartDate: &sd,
		Times:     []string{"08:00"},
		Quantity:  1,
		Form:      medications.DefaultForm,
		Unit:      medications.DefaultUnit,
	}
}

func TestMedicationRepo_CreateSetsIDAndTimestamps(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := newMedicationRepo(func() time.Time { return fixed })

	m, err := repo.Create(context.Background(), fields("Aspirin"))
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, fixed, m.CreatedAt)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
}

func TestMedicationRepo_UpdateAdvancesUpdatedAtWithFrozenClock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := newMedicationRepo(func() time.Time { return fixed })
	ctx := context.Background()

	created, err := repo.Create(ctx, fields("Aspirin"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, fields("Aspirin 500"))
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "Aspirin 500", updated.Name)
}

func TestMedicationRepo_ListOrdersByCreatedAtDesc(t *testing.T) {
	repo := newMedicationRepo(time.Now)
	ctx := context.Background()

	var ids []string
	for _, n := range []string{"a", "b", "c"} {
		m, err := repo.Create(ctx, fields(n))
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	// update no cambia el orden (es por created_at)
	_, err := repo.Update(ctx, ids[0], fields("a2"))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestMedicationRepo_NotFound(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, medications.ErrNotFound)

	_, err = repo.Update(ctx, "missing", fields("x"))
	assert.ErrorIs(t, err, medications.ErrNotFound)

	_, err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, medications.ErrNotFound)
}

func TestMedicationRepo_UpdateWithoutStartDateIsInvalidRecord(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, fields("Aspirin"))
	require.NoError(t, err)

	f := fields("Aspirin")
	f.StartDate = nil
	_, err = repo.Update(ctx, created.ID, f)
	assert.ErrorIs(t, err, medications.ErrInvalidRecord)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestMedicationRepo_DeleteReturnsPriorRow(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, fields("Aspirin"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, medications.ErrNotFound)
}

func TestMedicationRepo_ReturnsCopies(t *testing.T) {
	repo := NewMedicationRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, fields("Aspirin"))
	require.NoError(t, err)
	created.Times[0] = "mutated"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00"}, got.Times)
}
