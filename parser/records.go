// Package parser loads line-delimited JSON R1CS, witness and public-inputs
// artifacts and turns them into descriptors consumable by the gnark
// frontend. Every loader fails on the first malformed line: a partially
// loaded circuit or witness is cryptographically meaningless.
package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Constraint rows of large circuits routinely exceed bufio.Scanner's
// default 64KiB line limit.
const maxRecordSize = 1 << 26

// Records reads a jsonl artifact as a header line followed by a lazy,
// forward-only sequence of payload rows. It cannot be rewound; reopen the
// underlying file to restart.
type Records struct {
	scanner *bufio.Scanner
	line    int
}

// NewRecords wraps a byte stream for record-at-a-time decoding.
func NewRecords(r io.Reader) *Records {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	return &Records{scanner: scanner}
}

// next returns the next non-empty line, trimmed.
func (r *Records) next() ([]byte, bool, error) {
	for r.scanner.Scan() {
		r.line++
		b := bytes.TrimSpace(r.scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		return b, true, nil
	}
	return nil, false, r.scanner.Err()
}

// Header decodes the first line of the stream. An empty stream yields
// ErrTruncatedFile.
func (r *Records) Header() (*Header, error) {
	b, ok, err := r.next()
	if err != nil {
		return nil, fmt.Errorf("failed to read header line: %w", err)
	}
	if !ok {
		return nil, ErrTruncatedFile
	}
	var h Header
	if err := json.Unmarshal(b, &h); err != nil {
		if errors.Is(err, ErrMalformedHeader) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedHeader, r.line, err)
	}
	return &h, nil
}

// Next decodes the next payload row into v. It reports false once the
// stream is exhausted. A line that fails to decode aborts the whole load
// with a MalformedRecordError carrying its 1-based line number.
func (r *Records) Next(v any) (bool, error) {
	b, ok, err := r.next()
	if err != nil {
		return false, fmt.Errorf("failed to read line %d: %w", r.line+1, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, &MalformedRecordError{Line: r.line, Err: err}
	}
	return true, nil
}
