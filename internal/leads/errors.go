package leads

import (
	"errors"
	"net/http"

	"github.com/losslocator/locator/pkg/repository"
)

// Domain errors for routing queue operations.
var (
	ErrNotFound               = errors.New("lead not found")
	ErrValidation             = errors.New("invalid lead input")
	ErrInvalidTransition      = errors.New("status cannot move backward")
	ErrNotQualified           = errors.New("event does not meet admission thresholds")
	ErrDuplicate              = errors.New("lead already exists for event")
	ErrConcurrentModification = errors.New("lead was modified concurrently")
)

// MapHTTPStatus maps routing queue domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrNotQualified):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
