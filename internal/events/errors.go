package events

import (
	"errors"
	"net/http"

	"github.com/losslocator/locator/pkg/repository"
)

// Domain errors for loss event operations.
var (
	ErrNotFound  = errors.New("loss event not found")
	ErrInvalidID = errors.New("invalid loss event id")
)

// MapHTTPStatus maps loss event domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, repository.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
