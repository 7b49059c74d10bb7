package medications

import "context"

// Repository es la capa de acceso a datos. Cada método es una sola sentencia
// contra el store; los timestamps y el id los asigna el store.
type Repository interface {
	List(ctx context.Context) ([]Medication, error)
	GetByID(ctx context.Context, id string) (Medication, error)
	Create(ctx context.Context, f Fields) (Medication, error)
	Update(ctx context.Context, id string, f Fields) (Medication, error)
	Delete(ctx context.Context, id string) (Medication, error)
}
