package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yungbote/studytrack-backend/internal/domain"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.NewError(domain.CodeValidation, "op", "bad", nil), http.StatusBadRequest, "validation"},
		{"not found wrapped", fmt.Errorf("ctx: %w", domain.NewError(domain.CodeNotFound, "op", "gone", nil)), http.StatusNotFound, "not_found"},
		{"retryable", domain.NewError(domain.CodeRetryable, "op", "later", nil), http.StatusServiceUnavailable, "retryable"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"explicit", New(http.StatusTeapot, "teapot", errors.New("short and stout")), http.StatusTeapot, "teapot"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromError(tc.err)
			if got.Status != tc.status || got.Code != tc.code {
				t.Fatalf("FromError=%d/%s want %d/%s", got.Status, got.Code, tc.status, tc.code)
			}
		})
	}
	if FromError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
