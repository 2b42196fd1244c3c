package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is what services return to handlers. Message is safe to show to
// the client; Err keeps the cause for logs and errors.Is.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeDuplicateEntry    = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError   = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
)

var statusByCode = map[string]int{
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeInsufficientStock: http.StatusBadRequest,
	ErrCodeUnauthorized:      http.StatusUnauthorized,
	ErrCodeForbidden:         http.StatusForbidden,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeDuplicateEntry:    http.StatusConflict,
	ErrCodeTooManyRequests:   http.StatusTooManyRequests,
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeDatabaseError:     http.StatusInternalServerError,
	ErrCodeThirdPartyError:   http.StatusInternalServerError,
}

// StatusFor maps an error code to its HTTP status. Unknown codes are 500.
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode}
}

func ofCode(code string) func(message string) *AppError {
	return func(message string) *AppError {
		return NewAppError(code, message, StatusFor(code))
	}
}

var (
	ValidationError        = ofCode(ErrCodeValidation)
	BadRequestError        = ofCode(ErrCodeBadRequest)
	NotFoundError          = ofCode(ErrCodeNotFound)
	UnauthorizedError      = ofCode(ErrCodeUnauthorized)
	ForbiddenError         = ofCode(ErrCodeForbidden)
	InternalError          = ofCode(ErrCodeInternal)
	DatabaseError          = ofCode(ErrCodeDatabaseError)
	DuplicateEntryError    = ofCode(ErrCodeDuplicateEntry)
	InsufficientStockError = ofCode(ErrCodeInsufficientStock)
	ThirdPartyError        = ofCode(ErrCodeThirdPartyError)
	TooManyRequestsError   = ofCode(ErrCodeTooManyRequests)
)

// StockShortageError names the product and says how many units were asked
// for against how many are left.
func StockShortageError(product string, requested, available int) *AppError {
	return InsufficientStockError("Insufficient stock for product: " + product).
		WithDetail(fmt.Sprintf("requested %d, available %d", requested, available))
}

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err wraps an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}
