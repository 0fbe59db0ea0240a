package gce

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
)

func apiError(code int) error {
	return &googleapi.Error{Code: code, Message: "boom"}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{name: "not found", err: apiError(http.StatusNotFound), check: IsNotFound, want: true},
		{name: "not found wrapped", err: fmt.Errorf("outer: %w", apiError(http.StatusNotFound)), check: IsNotFound, want: true},
		{name: "not found vs conflict", err: apiError(http.StatusConflict), check: IsNotFound, want: false},
		{name: "already exists", err: apiError(http.StatusConflict), check: IsAlreadyExists, want: true},
		{name: "rate limited", err: apiError(http.StatusTooManyRequests), check: IsRateLimited, want: true},
		{name: "plain error", err: errors.New("plain"), check: IsNotFound, want: false},
		{name: "nil error", err: nil, check: IsNotFound, want: false},
		{name: "invalid parameter", err: apiError(http.StatusBadRequest), check: isInvalidParameter, want: true},
		{name: "server error not invalid", err: apiError(http.StatusInternalServerError), check: isInvalidParameter, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
