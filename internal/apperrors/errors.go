package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error kinds. Every domain error unwraps to exactly one of these, so callers
// can branch with errors.Is(err, apperrors.ErrNotFound).
var (
	// ErrBadRequest indicates that input data failed validation or a business rule.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates that an attempt was made to create a resource that already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrForbidden indicates that the acting user may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is an alias for ErrBadRequest.
	ErrValidation = ErrBadRequest

	// ErrDuplicate is an alias for ErrConflict.
	ErrDuplicate = ErrConflict
)

// Machine-readable error codes. Each code has a localized message in messages.go.
const (
	CodeValidationFailed         = "VALIDATION_FAILED"
	CodeInvoiceItemsEmpty        = "INVOICE_ITEMS_EMPTY"
	CodePaidNegative             = "PAID_NEGATIVE"
	CodePaidExceedsTotal         = "PAID_EXCEEDS_TOTAL"
	CodeProductDescriptionNeeded = "PRODUCT_DESCRIPTION_REQUIRED"
	CodeInsufficientStock        = "INSUFFICIENT_STOCK"
	CodeAmountNotPositive        = "AMOUNT_NOT_POSITIVE"
	CodeInvalidSlug              = "INVALID_SLUG"

	CodeOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeCustomerNotFound     = "CUSTOMER_NOT_FOUND"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeInvoiceNotFound      = "INVOICE_NOT_FOUND"

	CodeOrganizationSlugTaken  = "ORGANIZATION_SLUG_TAKEN"
	CodeCustomerNameTaken      = "CUSTOMER_NAME_TAKEN"
	CodeProductBarcodeTaken    = "PRODUCT_BARCODE_TAKEN"
	CodeProductDescriptionUsed = "PRODUCT_DESCRIPTION_TAKEN"
	CodeUsernameTaken          = "USERNAME_TAKEN"
	CodeDuplicate              = "DUPLICATE"

	CodeLastAdmin     = "LAST_ADMIN"
	CodeSelfDelete    = "SELF_DELETE"
	CodeAdminRequired = "ADMIN_REQUIRED"
	CodeNotMember     = "NOT_ORGANIZATION_MEMBER"
)

// AppError is a domain error with a stable code. Message is the English
// rendering; use Localize for other languages.
type AppError struct {
	Kind    error
	Code    string
	Message string
	Args    []any
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

// NewAppError builds an AppError whose message is rendered from the catalog entry for code.
func NewAppError(kind error, code string, args ...any) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: render(defaultLanguage, code, args...),
		Args:    args,
	}
}

func NewBadRequestError(code string, args ...any) *AppError {
	return NewAppError(ErrBadRequest, code, args...)
}

func NewNotFoundError(code string, args ...any) *AppError {
	return NewAppError(ErrNotFound, code, args...)
}

func NewConflictError(code string, args ...any) *AppError {
	return NewAppError(ErrConflict, code, args...)
}

func NewForbiddenError(code string, args ...any) *AppError {
	return NewAppError(ErrForbidden, code, args...)
}

// NewValidationFailedError converts validator output into a BadRequest error
// listing the offending fields.
func NewValidationFailedError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestError(CodeValidationFailed, err.Error())
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return NewBadRequestError(CodeValidationFailed, strings.Join(details, "; "))
}

// CodeOf returns the machine code carried by err, or an empty string.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsDomainError reports whether err belongs to one of the four error kinds.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden)
}
