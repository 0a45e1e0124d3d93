// Package errors provides custom error types for the HomeLedger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// FieldError describes one violated rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// RawResponse carries an untrusted collaborator payload back to the caller so
// it can be corrected by hand.
type AppError struct {
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	StatusCode  int          `json:"-"`
	Internal    error        `json:"-"`
	Fields      []FieldError `json:"fields,omitempty"`
	RawResponse string       `json:"raw_response,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// NewValidationError bundles every violated field into a single error.
func NewValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    ErrValidation.Message,
		StatusCode: ErrValidation.StatusCode,
		Fields:     fields,
	}
}

// WithRawResponse attaches the raw collaborator payload to a copy of sentinel.
func WithRawResponse(sentinel *AppError, raw string, internal error) *AppError {
	return &AppError{
		Code:        sentinel.Code,
		Message:     sentinel.Message,
		StatusCode:  sentinel.StatusCode,
		Internal:    internal,
		RawResponse: raw,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountInactive    = &AppError{Code: "ACCOUNT_INACTIVE", Message: "This account has been deactivated", StatusCode: http.StatusForbidden}
	ErrUserNotProvisioned = &AppError{Code: "USER_NOT_PROVISIONED", Message: "No user has been set up for this identity", StatusCode: http.StatusForbidden}
	ErrBootstrapClosed    = &AppError{Code: "BOOTSTRAP_CLOSED", Message: "Initial setup has already been completed", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "One or more fields are invalid", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "The request conflicts with existing data", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrLastAdmin      = &AppError{Code: "LAST_ADMIN", Message: "The last active admin cannot be demoted or deactivated", StatusCode: http.StatusConflict}
)

// Property hierarchy errors.
var (
	ErrHomeNotFound      = &AppError{Code: "HOME_NOT_FOUND", Message: "Home not found", StatusCode: http.StatusNotFound}
	ErrHomeImageNotFound = &AppError{Code: "HOME_IMAGE_NOT_FOUND", Message: "Home image not found", StatusCode: http.StatusNotFound}
	ErrAreaNotFound      = &AppError{Code: "AREA_NOT_FOUND", Message: "Area not found", StatusCode: http.StatusNotFound}
	ErrAreaHasRooms      = &AppError{Code: "AREA_HAS_ROOMS", Message: "Area still has rooms; delete or reassign them first", StatusCode: http.StatusConflict}
	ErrRoomNotFound      = &AppError{Code: "ROOM_NOT_FOUND", Message: "Room not found", StatusCode: http.StatusNotFound}
)

// Supplier and purchase errors.
var (
	ErrSupplierNotFound   = &AppError{Code: "SUPPLIER_NOT_FOUND", Message: "Supplier not found", StatusCode: http.StatusNotFound}
	ErrPurchaseNotFound   = &AppError{Code: "PURCHASE_NOT_FOUND", Message: "Purchase not found", StatusCode: http.StatusNotFound}
	ErrAttachmentNotFound = &AppError{Code: "ATTACHMENT_NOT_FOUND", Message: "Attachment not found", StatusCode: http.StatusNotFound}
)

// Taxonomy errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing purchases", StatusCode: http.StatusConflict}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrTagNotFound       = &AppError{Code: "TAG_NOT_FOUND", Message: "Tag not found", StatusCode: http.StatusNotFound}
	ErrDuplicateTag      = &AppError{Code: "DUPLICATE_TAG", Message: "A tag with this name already exists", StatusCode: http.StatusConflict}
)

// Invoice extraction errors.
var (
	ErrExtractionUnavailable = &AppError{Code: "EXTRACTION_UNAVAILABLE", Message: "Invoice extraction is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrExtractionFailed      = &AppError{Code: "EXTRACTION_FAILED", Message: "The invoice could not be read; correct the details manually", StatusCode: http.StatusBadGateway}
)
