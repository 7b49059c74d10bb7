package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"medications-api/internal/domain/medications"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: sql.ErrNoRows, want: medications.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", sql.ErrNoRows), want: medications.ErrNotFound},
		{name: "not null", in: &pgconn.PgError{Code: "23502", ColumnName: "start_date"}, want: medications.ErrInvalidRecord},
		{name: "too long", in: &pgconn.PgError{Code: "22001"}, want: medications.ErrInvalidRecord},
		{name: "other", in: boom, want: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_KeepsDriverText(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: "23502", ColumnName: "start_date", Message: "null value in column"})
	assert.Contains(t, err.Error(), "start_date")
	assert.Contains(t, err.Error(), "null value in column")
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("0b7a1c2e-8f43-4c55-9d61-1f2e3a4b5c6d"))
	assert.False(t, validID(""))
	assert.False(t, validID("not-a-uuid"))
}
