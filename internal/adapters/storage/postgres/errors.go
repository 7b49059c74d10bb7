package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"medications-api/internal/domain/medications"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que tratamos como registro inválido.
const (
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
	stringTooLongCode    = "22001"
	invalidTextCode      = "22P02"
)

// mapError traduce errores del driver a errores de dominio, conservando el
// original en la cadena para el log y la respuesta 500.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return medications.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v", medications.ErrInvalidRecord, pgErr.ColumnName, err)
		case checkViolationCode, stringTooLongCode, invalidTextCode:
			return fmt.Errorf("%w: %v", medications.ErrInvalidRecord, err)
		}
	}
	return err
}
