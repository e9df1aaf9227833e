package thresholds

import (
	"errors"
	"net/http"

	"github.com/losslocator/locator/pkg/repository"
)

// Domain errors for threshold configuration operations.
var (
	ErrNotFound   = errors.New("threshold configuration not found")
	ErrValidation = errors.New("invalid threshold configuration")
)

// MapHTTPStatus maps threshold domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, repository.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
