package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		wantCode   string
	}{
		{"organizations_slug_key", apperrors.CodeOrganizationSlugTaken},
		{"users_org_username_active_idx", apperrors.CodeUsernameTaken},
		{"products_org_barcode_key", apperrors.CodeProductBarcodeTaken},
		{"products_org_description_key", apperrors.CodeProductDescriptionUsed},
		{"something_else_key", apperrors.CodeDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint}
			err := translateError(fmt.Errorf("insert: %w", pgErr))
			assert.ErrorIs(t, err, apperrors.ErrConflict)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestTranslateError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgForeignKeyViolation,
		ConstraintName: "invoices_customer_id_fkey",
		Detail:         `Key (customer_id)=(c-42) is not present in table "customers".`,
	}
	err := translateError(pgErr)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, apperrors.CodeCustomerNotFound, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "c-42")

	unknown := &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "unmapped_fkey"}
	assert.Same(t, unknown, translateError(unknown))
}

func TestTranslateError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Same(t, plain, translateError(plain))

	serialization := &pgconn.PgError{Code: "40001"}
	assert.Same(t, serialization, translateError(serialization))
}

func TestNotFound(t *testing.T) {
	err := notFound(pgx.ErrNoRows, apperrors.CodeProductNotFound, "p-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, apperrors.CodeProductNotFound, apperrors.CodeOf(err))

	other := errors.New("timeout")
	assert.Same(t, other, notFound(other, apperrors.CodeProductNotFound, "p-1"))
}

func TestNotFound_MalformedID(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgInvalidTextRepresentation, Message: `invalid input syntax for type uuid: "abc"`}

	err := notFound(fmt.Errorf("query: %w", pgErr), apperrors.CodeInvoiceNotFound, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, apperrors.IsDomainError(err))
	assert.Equal(t, apperrors.CodeInvoiceNotFound, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "abc")
}

func TestKeyValue(t *testing.T) {
	assert.Equal(t, "abc", keyValue(`Key (product_id)=(abc) is not present in table "products".`))
	assert.Empty(t, keyValue("no key here"))
}
