package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedFile is returned when an artifact has no header line.
	ErrTruncatedFile = errors.New("truncated file: missing header line")

	// ErrMalformedHeader is returned when the header line cannot be decoded.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrInvalidFieldElement is returned when a coefficient string is not a
	// valid non-negative decimal integer.
	ErrInvalidFieldElement = errors.New("invalid field element")
)

// MalformedRecordError reports a payload line that failed to decode. Line
// numbers are 1-based, counting the header.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// InconsistentVariableCountError reports a variable index outside the range
// declared by the header's n_variables.
type InconsistentVariableCountError struct {
	Index       int
	NbVariables int
}

func (e *InconsistentVariableCountError) Error() string {
	return fmt.Sprintf("variable index %d out of range: header declares %d variables", e.Index, e.NbVariables)
}

// MissingWitnessValueError reports a declared circuit variable with no entry
// in the supplied witness. Defaulting the value instead would hide a
// witness/descriptor mismatch.
type MissingWitnessValueError struct {
	Index int
}

func (e *MissingWitnessValueError) Error() string {
	return fmt.Sprintf("witness has no value for variable index %d", e.Index)
}

// UnknownVariableIndexError reports a constraint term referencing an index
// that was never allocated. The descriptor loader validates indices eagerly,
// so hitting this during synthesis is an internal invariant violation.
type UnknownVariableIndexError struct {
	Index int
}

func (e *UnknownVariableIndexError) Error() string {
	return fmt.Sprintf("constraint references unallocated variable index %d", e.Index)
}
