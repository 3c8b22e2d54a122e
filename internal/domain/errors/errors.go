package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidState         = errors.New("operation not allowed in current state")
	ErrNotAuthorized        = errors.New("actor is not authorized")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrGateway              = errors.New("payment gateway failure")
	ErrValidation           = errors.New("invalid input")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrAccountSuspended     = errors.New("account suspended")
	ErrAlreadyExists        = errors.New("resource already exists")
)

// Machine-readable error codes surfaced to the frontend
const (
	CodeNotFound             = "not_found"
	CodeInvalidState         = "invalid_state"
	CodeNotAuthorized        = "not_authorized"
	CodeDuplicateApplication = "duplicate_application"
	CodeGatewayError         = "gateway_error"
	CodeValidationError      = "validation_error"
	CodeUnauthorized         = "unauthorized"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeTokenExpired         = "token_expired"
	CodeAccountSuspended     = "account_suspended"
	CodeAlreadyExists        = "already_exists"
	CodeInternalError        = "internal_error"
)

// AppError carries an HTTP status and a machine-readable code alongside the
// human message.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func InvalidState(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeInvalidState, message, ErrInvalidState)
}

func NotAuthorized(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeNotAuthorized, message, ErrNotAuthorized)
}

func DuplicateApplication(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeDuplicateApplication, message, ErrDuplicateApplication)
}

func GatewayError(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, CodeGatewayError, message, errors.Join(ErrGateway, err))
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidationError, message, ErrValidation)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func AlreadyExists(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeAlreadyExists, message, ErrAlreadyExists)
}

func AccountSuspended(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeAccountSuspended, message, ErrAccountSuspended)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}
