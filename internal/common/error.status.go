package common

import "fmt"

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Success
	StatusCreated   = 201 // Resource created
	StatusAccepted  = 202 // Request accepted
	StatusNoContent = 204 // Success with empty body

	// Client Error Codes (4xx)
	StatusBadRequest       = 400 // Malformed or invalid request
	StatusUnauthorized     = 401 // Not authenticated
	StatusForbidden        = 403 // Not allowed
	StatusNotFound         = 404 // Resource not found
	StatusConflict         = 409 // Data conflict
	StatusTooManyRequests  = 429 // Rate limited

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Internal error
	StatusServiceUnavailable  = 503 // Service unavailable
)

// Response Messages
const (
	MsgSuccess = "Operation completed successfully"
	MsgCreated = "Resource created successfully"

	MsgBadRequest      = "Invalid request"
	MsgUnauthorized    = "Please sign in"
	MsgForbidden       = "You do not have permission to perform this action"
	MsgNotFound        = "Resource not found"
	MsgConflict        = "Data conflict"
	MsgInternalError   = "Internal system error"
	MsgValidationError = "Invalid data"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid authentication token"
	MsgTokenExpired = "Session has expired"
)

// ErrorCode defines a detailed error code
type ErrorCode struct {
	Code        string // Machine-readable code (e.g. AUTH_001)
	Category    string // Error category (e.g. Authentication)
	SubCategory string // Sub category (e.g. Token)
	Description string // Human description
}

// Error codes grouped per category
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "General authentication error",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Token related error",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Login credential error",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "User role error",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "General validation error",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Store Errors (STORE_xxx)
	ErrCodeStore = ErrorCode{
		Code:        "STORE",
		Category:    "Store",
		SubCategory: "General",
		Description: "General data store error",
	}

	ErrCodeStoreQuery = ErrorCode{
		Code:        "STORE_001",
		Category:    "Store",
		SubCategory: "Query",
		Description: "Data lookup error",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "General business rule error",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Invalid business state transition",
	}

	ErrCodeBusinessStock = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Stock",
		Description: "Inventory does not cover the requested quantity",
	}
)

// Error defines the detailed error structure returned by every layer
type Error struct {
	Code       ErrorCode // Detailed error code
	Message    string    // Error message
	StatusCode int       // HTTP status code
	Details    any       // Additional error details (wrapped cause, field info, ...)
}

// Error returns the error message
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the same classified error (supports errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError creates a fully populated error
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrUnauthorized       = NewError(ErrCodeAuth, MsgUnauthorized, StatusUnauthorized, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Incorrect email or password", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Store Errors
	ErrNotFound  = NewError(ErrCodeStoreQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeStoreQuery, "Data already exists", StatusConflict, nil)

	// Business Logic Errors
	ErrInvalidStatusTransition = NewError(ErrCodeBusinessState, "Order status transition is not allowed", StatusBadRequest, nil)
)

// NewInsufficientStockError creates the rejection returned when an order line
// requests more units than the product currently has on hand. The product name
// is part of the message so the storefront can show which line failed.
func NewInsufficientStockError(productName string) error {
	return NewError(
		ErrCodeBusinessStock,
		fmt.Sprintf("Insufficient stock for %s", productName),
		StatusBadRequest,
		nil,
	)
}

// IsInsufficientStock reports whether err is an insufficient stock rejection.
func IsInsufficientStock(err error) bool {
	if customErr, ok := err.(*Error); ok {
		return customErr.Code.Code == ErrCodeBusinessStock.Code
	}
	return false
}
