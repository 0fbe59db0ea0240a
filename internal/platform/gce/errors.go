package gce

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isHTTPCode(err, http.StatusNotFound)
}

// IsAlreadyExists checks if an error indicates the resource already exists.
func IsAlreadyExists(err error) bool {
	return isHTTPCode(err, http.StatusConflict)
}

// IsRateLimited checks if an error indicates API rate limiting.
// These errors are retryable.
func IsRateLimited(err error) bool {
	return isHTTPCode(err, http.StatusTooManyRequests)
}

// isInvalidParameter checks if an error indicates invalid parameters.
// These errors are fatal and should not be retried.
func isInvalidParameter(err error) bool {
	return isHTTPCode(err, http.StatusBadRequest, http.StatusNotFound, http.StatusConflict)
}

// isHTTPCode checks if the error is a googleapi error with one of the
// given HTTP status codes.
func isHTTPCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.Code == code {
				return true
			}
		}
	}
	return false
}
