package medications

import "time"

// Valores por defecto aplicados cuando el cliente no envía el campo
// (o lo envía vacío / en cero).
const (
	DefaultForm     = "comprimido"
	DefaultUnit     = "unidade"
	DefaultQuantity = 1.0
)

// Medication representa una fila de la tabla medicamentos.
type Medication struct {
	ID string

	Name        string
	Description *string

	StartDate time.Time
	EndDate   *time.Time

	Times     []string // horarios, p.ej. "08:00"
	IsRegular bool

	Quantity float64
	Form     string // comprimido, gotas, ...
	Unit     string // unidade, ml, ...

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields son los campos editables de un medicamento, tal como llegan al store.
// StartDate es puntero porque Update no exige su presencia.
type Fields struct {
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Times       []string
	IsRegular   bool
	Quantity    float64
	Form        string
	Unit        string
}
