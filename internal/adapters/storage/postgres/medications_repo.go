package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"medications-api/internal/domain/medications"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const medicationColumns = `
	id, name, descricao,
	start_date, end_date,
	times, is_regular,
	quantity, form, unit,
	created_at, updated_at`

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) List(ctx context.Context) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+medicationColumns+`
		FROM medicamentos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", mapError(err))
	}
	defer rows.Close()

	types := pgtype.NewMap()
	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows, types)
		if err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list medications: %w", mapError(err))
	}
	return out, nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	if !validID(id) {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+medicationColumns+`
		FROM medicamentos
		WHERE id = $1
	`, id)
	return r.scanOne(row, "get medication")
}

func (r *MedicationsRepo) Create(ctx context.Context, f medications.Fields) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO medicamentos (
			name, descricao,
			start_date, end_date,
			times, is_regular,
			quantity, form, unit,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING`+medicationColumns,
		f.Name,
		toNullString(f.Description),
		toNullDate(f.StartDate),
		toNullDate(f.EndDate),
		f.Times,
		f.IsRegular,
		f.Quantity,
		f.Form,
		f.Unit,
	)
	return r.scanOne(row, "create medication")
}

func (r *MedicationsRepo) Update(ctx context.Context, id string, f medications.Fields) (medications.Medication, error) {
	if !validID(id) {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE medicamentos
		SET
			name = $1,
			descricao = $2,
			start_date = $3,
			end_date = $4,
			times = $5,
			is_regular = $6,
			quantity = $7,
			form = $8,
			unit = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING`+medicationColumns,
		f.Name,
		toNullString(f.Description),
		toNullDate(f.StartDate),
		toNullDate(f.EndDate),
		f.Times,
		f.IsRegular,
		f.Quantity,
		f.Form,
		f.Unit,
		id,
	)
	return r.scanOne(row, "update medication")
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) (medications.Medication, error) {
	if !validID(id) {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		DELETE FROM medicamentos
		WHERE id = $1
		RETURNING`+medicationColumns, id)
	return r.scanOne(row, "delete medication")
}

func (r *MedicationsRepo) scanOne(row *sql.Row, op string) (medications.Medication, error) {
	m, err := scanMedication(row, pgtype.NewMap())
	if err != nil {
		err = mapError(err)
		if errors.Is(err, medications.ErrNotFound) {
			return medications.Medication{}, err
		}
		return medications.Medication{}, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanMedication lee una fila en el orden de medicationColumns.
// Las columnas con DEFAULT pueden venir NULL en filas viejas; en ese caso se
// usa el mismo default que el DDL.
func scanMedication(s scanner, types *pgtype.Map) (medications.Medication, error) {
	var (
		m         medications.Medication
		descricao sql.NullString
		endDate   sql.NullTime
		times     []string
		isRegular sql.NullBool
		quantity  sql.NullFloat64
		form      sql.NullString
		unit      sql.NullString
	)

	if err := s.Scan(
		&m.ID,
		&m.Name,
		&descricao,
		&m.StartDate,
		&endDate,
		types.SQLScanner(&times),
		&isRegular,
		&quantity,
		&form,
		&unit,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	if descricao.Valid {
		d := descricao.String
		m.Description = &d
	}
	if endDate.Valid {
		t := endDate.Time
		m.EndDate = &t
	}
	m.Times = times
	if m.Times == nil {
		m.Times = []string{}
	}
	m.IsRegular = isRegular.Valid && isRegular.Bool
	m.Quantity = medications.DefaultQuantity
	if quantity.Valid {
		m.Quantity = quantity.Float64
	}
	m.Form = medications.DefaultForm
	if form.Valid {
		m.Form = form.String
	}
	m.Unit = medications.DefaultUnit
	if unit.Valid {
		m.Unit = unit.String
	}

	return m, nil
}

// Un id que no es UUID nunca existe; evita el error de cast de Postgres.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// start_date / end_date son DATE, los pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
