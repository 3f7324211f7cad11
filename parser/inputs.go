package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ParseInputsFile decodes a public-inputs jsonl stream into its [index,
// value] rows, in file order. The format is the witness row shape with or
// without a leading header line: no header distinction is enforced, so the
// first line is taken as a header only when it does not decode as a pair.
func ParseInputsFile(r io.Reader) ([]Assignment, error) {
	records := NewRecords(r)
	b, ok, err := records.next()
	if err != nil {
		return nil, fmt.Errorf("failed to read inputs file: %w", err)
	}
	if !ok {
		return nil, ErrTruncatedFile
	}

	var inputs []Assignment
	var first Assignment
	if err := json.Unmarshal(b, &first); err == nil {
		inputs = append(inputs, first)
	} else {
		var h Header
		if err := json.Unmarshal(b, &h); err != nil {
			return nil, &MalformedRecordError{Line: records.line, Err: err}
		}
	}

	for {
		var a Assignment
		ok, err := records.Next(&a)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		inputs = append(inputs, a)
	}
	return inputs, nil
}

// InputVector returns the input values ordered by ascending variable index.
// The verifier consumes public inputs in allocation order, which is index
// order, never file order.
func InputVector(inputs []Assignment) []fr.Element {
	sorted := make([]Assignment, len(inputs))
	copy(sorted, inputs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	values := make([]fr.Element, len(sorted))
	for i, a := range sorted {
		values[i] = a.Value
	}
	return values
}
