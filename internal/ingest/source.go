package ingest

import (
	"context"
	"errors"
	"fmt"

	"fixtures-service/internal/domain"
)

// Source defines how raw match data is obtained. The classifier never cares
// about provenance; implementations hand over already-parsed tabular
// records and report failures as errors instead of fabricating data.
type Source interface {
	FetchMatches(ctx context.Context) ([]domain.RawMatch, error)
}

// InputError marks a source-level failure: the data could not be obtained
// or read at all, so there is nothing to classify.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("ingest: source %s failed: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("ingest: source failed: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError wraps an error as an InputError for the named source.
func NewInputError(source string, err error) error {
	if err == nil {
		return nil
	}
	return &InputError{Source: source, Err: err}
}

// AsInputError attempts to unwrap an error into an InputError.
func AsInputError(err error) (*InputError, bool) {
	var inErr *InputError
	if errors.As(err, &inErr) {
		return inErr, true
	}
	return nil, false
}
