package card

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable matches any *SourceUnavailableError via errors.Is.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedRow matches any *MalformedRowError via errors.Is.
	ErrMalformedRow = errors.New("malformed row")
	// ErrLoadInProgress is returned when Store.Load is called while another load is running.
	ErrLoadInProgress = errors.New("load already in progress")
)

// SourceUnavailableError reports a source that could not be opened or read.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %q unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// MalformedRowError reports a record that does not parse into the three
// required fields. Row is the 1-based line number, the header being row 1.
type MalformedRowError struct {
	Source string
	Row    int
	Reason string
	Err    error
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("%s: row %d: %s", e.Source, e.Row, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}
