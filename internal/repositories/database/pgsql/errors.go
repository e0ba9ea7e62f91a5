package pgsql

import (
	"errors"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	// Raised when an id that is not a UUID is compared with a UUID column.
	pgInvalidTextRepresentation = "22P02"
)

// Unique constraint and index names from migrations/000001_init.up.sql.
var uniqueViolationCodes = map[string]string{
	"organizations_slug_key":        apperrors.CodeOrganizationSlugTaken,
	"users_org_username_active_idx": apperrors.CodeUsernameTaken,
	"customers_org_name_key":        apperrors.CodeCustomerNameTaken,
	"products_org_barcode_key":      apperrors.CodeProductBarcodeTaken,
	"products_org_description_key":  apperrors.CodeProductDescriptionUsed,
}

var foreignKeyViolationCodes = map[string]string{
	"users_organization_id_fkey":        apperrors.CodeOrganizationNotFound,
	"customers_organization_id_fkey":    apperrors.CodeOrganizationNotFound,
	"products_organization_id_fkey":     apperrors.CodeOrganizationNotFound,
	"invoices_customer_id_fkey":         apperrors.CodeCustomerNotFound,
	"invoices_cashier_id_fkey":          apperrors.CodeUserNotFound,
	"invoice_items_product_id_fkey":     apperrors.CodeProductNotFound,
	"transactions_customer_id_fkey":     apperrors.CodeCustomerNotFound,
	"transactions_cashier_id_fkey":      apperrors.CodeUserNotFound,
	"transactions_organization_id_fkey": apperrors.CodeOrganizationNotFound,
	"expenses_cashier_id_fkey":          apperrors.CodeUserNotFound,
}

// translateError maps constraint violations onto domain errors. Anything
// else is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if code, ok := uniqueViolationCodes[pgErr.ConstraintName]; ok {
			return apperrors.NewConflictError(code)
		}
		return apperrors.NewConflictError(apperrors.CodeDuplicate)
	case pgForeignKeyViolation:
		if code, ok := foreignKeyViolationCodes[pgErr.ConstraintName]; ok {
			return apperrors.NewNotFoundError(code, keyValue(pgErr.Detail))
		}
	}
	return err
}

// notFound turns pgx.ErrNoRows into a NotFound error for the given entity.
// A malformed id cannot match any row, so it is NotFound as well.
func notFound(err error, code, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(code, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return apperrors.NewNotFoundError(code, id)
	}
	return translateError(err)
}

// keyValue extracts "abc" from a detail like `Key (customer_id)=(abc) is not present in table "customers".`
func keyValue(detail string) string {
	_, rest, ok := strings.Cut(detail, ")=(")
	if !ok {
		return ""
	}
	value, _, _ := strings.Cut(rest, ")")
	return value
}
