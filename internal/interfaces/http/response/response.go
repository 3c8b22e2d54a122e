package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "pawmart.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Bare domain sentinels coming up from the
// repository layer map to their taxonomy status; anything else is reported as
// a 500 without leaking the underlying message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrInvalidState):
		return domainerrors.InvalidState("operation not allowed in current state")
	case errors.Is(err, domainerrors.ErrNotAuthorized):
		return domainerrors.NotAuthorized("not authorized")
	case errors.Is(err, domainerrors.ErrDuplicateApplication):
		return domainerrors.DuplicateApplication("application already exists")
	case errors.Is(err, domainerrors.ErrValidation):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.AlreadyExists("resource already exists")
	case errors.Is(err, domainerrors.ErrAccountSuspended):
		return domainerrors.AccountSuspended("your account has been suspended")
	case errors.Is(err, domainerrors.ErrGateway):
		return domainerrors.GatewayError("payment gateway failure", err)
	default:
		return domainerrors.InternalError(err)
	}
}

// ErrorWithStatus sends an error response with an explicit status and code
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
