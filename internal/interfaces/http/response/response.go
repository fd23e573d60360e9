package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "edu-connect.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status; bare
// domain sentinels are mapped to a status here so handlers can pass
// usecase errors straight through.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Code, gin.H{
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrAlreadyReviewed):
		return domainerrors.NewAppError(http.StatusConflict, "You have already reviewed this course", err)
	case errors.Is(err, domainerrors.ErrInvalidOTP):
		return domainerrors.NewAppError(http.StatusBadRequest, "Invalid or expired verification code", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusBadRequest, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrPhoneNotVerified):
		return domainerrors.NewAppError(http.StatusBadRequest, "Phone number not verified", err)
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("Invalid input")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrNotEnrolled):
		return domainerrors.NewAppError(http.StatusForbidden, "You must be enrolled in this course", err)
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	default:
		return domainerrors.InternalError(err)
	}
}
