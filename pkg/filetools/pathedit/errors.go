package pathedit

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrEmptyRule indicates the from or to path is missing.
	ErrEmptyRule = errors.New("from and to paths are required")
	// ErrNoRows indicates there is no loaded data to process.
	ErrNoRows = errors.New("no rows loaded")
	// ErrAlreadyProcessed indicates the loaded batch was already rewritten.
	ErrAlreadyProcessed = errors.New("data already processed")
	// ErrNotProcessed indicates a save was requested before processing.
	ErrNotProcessed = errors.New("data not processed yet")
)

// DecodeError reports an input file that could not be read as a spreadsheet.
// The session keeps its previous state when one is returned.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode spreadsheet %q: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError reports an operation that is not allowed in the current
// session state. Nothing is changed when one is returned.
type ValidationError struct {
	Op  string // "process", "save"
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure to serialize or write the output workbook.
// No partial file is left behind.
type EncodeError struct {
	Target string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot write spreadsheet %q: %v", e.Target, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
