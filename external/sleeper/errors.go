package sleeper

import (
	"fmt"

	"github.com/riskibarqy/sleeper-report/internal/usecase"
)

// FetchError is returned for any failed provider call: transport failure,
// non-2xx status, oversized body or undecodable payload.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("sleeper %s: status=%d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("sleeper %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets callers match any fetch failure with usecase.ErrDependencyUnavailable.
func (e *FetchError) Is(target error) bool {
	return target == usecase.ErrDependencyUnavailable
}
