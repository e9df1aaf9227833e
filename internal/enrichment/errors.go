package enrichment

import (
	"errors"
	"net/http"

	"github.com/losslocator/locator/pkg/repository"
)

// Domain errors for enrichment lookups.
var (
	ErrPropertyNotFound    = errors.New("property enrichment not found")
	ErrDemographicNotFound = errors.New("zip demographic not found")
	ErrInvalidID           = errors.New("invalid enrichment lookup key")
)

// MapHTTPStatus maps enrichment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrPropertyNotFound) || errors.Is(err, ErrDemographicNotFound) {
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
