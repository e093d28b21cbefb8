package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "messaging-service/pkg/errors"
)

// ErrorResponse is a standardized error response for API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// statusOf maps a machine error code onto its HTTP status.
func statusOf(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.CodePermissionDenied:
		return http.StatusForbidden
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error body with the status derived from its
// code. Unrecognized errors surface as a generic 500 so internals never
// leak to clients.
func Error(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(apperrors.CodeInternal),
			Message: "An unexpected error occurred.",
		})
		return
	}
	c.JSON(statusOf(code), ErrorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

// BadRequest reports a binding/validation failure from gin.
func BadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    string(apperrors.CodeInvalidArgument),
		Message: "Invalid input data",
		Details: details,
	})
}
