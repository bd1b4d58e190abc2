package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders the last error recorded with c.Error as a
// dto.ErrorResponse, unless the handler already wrote a response.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	if err != nil {
//		_ = c.Error(err)
//		return
//	}
func ErrorHandler(c *gin.Context) {
	c.Next()

	last := c.Errors.Last()
	if last == nil || c.Writer.Written() {
		return
	}
	status, body := Render(last.Err)
	c.AbortWithStatusJSON(status, body)
}

// Render maps err to an HTTP status and response body.
//
// Known failures keep their literal message and report their cause as
// error_details. Internal failures never carry details: their cause only
// reaches the request log, and errors outside the taxonomy get a generic
// message.
func Render(err error) (int, dto.ErrorResponse) {
	e, ok := apperr.As(err)
	switch {
	case !ok:
		return StatusFor(err), dto.NewErrorResponse(internalErrorMessage, nil)
	case e.Kind.Class() == apperr.ClassInternal:
		return StatusFor(err), dto.NewErrorResponse(e.Error(), nil)
	default:
		return StatusFor(err), dto.NewErrorResponse(e.Error(), e.Unwrap())
	}
}

// StatusFor returns the HTTP status matching err's class.
//
//   - input and registration failures → 400
//   - absence (unknown code, no data, missing file) → 404
//   - corrupted sources → 422
//   - deadline exceeded → 504
//   - anything else → 500
func StatusFor(err error) int {
	switch apperr.ClassOf(err) {
	case apperr.ClassInput, apperr.ClassRegistration:
		return http.StatusBadRequest
	case apperr.ClassAbsence:
		return http.StatusNotFound
	case apperr.ClassIntegrity:
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
