package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/studytrack-backend/internal/domain"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError resolves err into an HTTP status and code. An *Error already in the
// chain wins; otherwise the domain error code decides.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	code := domain.CodeOf(err)
	switch code {
	case domain.CodeValidation:
		return New(http.StatusBadRequest, string(code), err)
	case domain.CodeNotFound:
		return New(http.StatusNotFound, string(code), err)
	case domain.CodeConflict:
		return New(http.StatusConflict, string(code), err)
	case domain.CodePreconditionFailed:
		return New(http.StatusPreconditionFailed, string(code), err)
	case domain.CodeRetryable:
		return New(http.StatusServiceUnavailable, string(code), err)
	case domain.CodeUnauthorized:
		return New(http.StatusUnauthorized, string(code), err)
	default:
		return New(http.StatusInternalServerError, string(domain.CodeInternal), err)
	}
}
