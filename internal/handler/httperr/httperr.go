package httperr

import (
	"net/http"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status. Invariant violations
// are checked first since a duplicate-key repository error also carries the
// conflict category.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvariantViolation):
		return http.StatusInternalServerError
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithDomainError classifies err and hides the message of server errors.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}

	var detail any
	var ve *availability.ValidationError
	if errs.As(err, &ve) {
		detail = FieldDetail{Field: ve.Field, Reason: ve.Reason}
	}
	AbortWithError(c, status, err, err.Error(), detail)
}

func AbortBadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
