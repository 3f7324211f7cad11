package parser

import (
	"fmt"
	"io"
	"sort"
)

// R1CSFile is the raw decoded artifact: header plus constraint rows in file
// order, before any validation or partitioning.
type R1CSFile struct {
	Header      Header
	Constraints []Constraint
}

// ParseR1CSFile decodes an R1CS jsonl stream: one header line, then one
// constraint row per line.
func ParseR1CSFile(r io.Reader) (*R1CSFile, error) {
	records := NewRecords(r)
	header, err := records.Header()
	if err != nil {
		return nil, err
	}
	var constraints []Constraint
	for {
		var c Constraint
		ok, err := records.Next(&c)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		constraints = append(constraints, c)
	}
	return &R1CSFile{Header: *header, Constraints: constraints}, nil
}

// R1CS is the canonical circuit descriptor. InputVariables and
// WitnessVariables are ascending and disjoint; together with the reserved
// constant index 0 they cover [0, NbVariables). The header's declared input
// order only marks which indices are public; allocation order is always
// ascending numeric index.
type R1CS struct {
	Header           Header
	InputVariables   []int
	WitnessVariables []int
	Constraints      []Constraint
}

// NewR1CS validates every referenced variable index against the header's
// n_variables and derives the input/witness partition. Bounds are checked
// here, eagerly, so synthesis never encounters an unallocated index.
func NewR1CS(file *R1CSFile) (*R1CS, error) {
	n := file.Header.NbVariables
	// The constant-one wire always exists, so a valid system declares at
	// least one variable.
	if n < 1 {
		return nil, fmt.Errorf("%w: n_variables must be at least 1, got %d", ErrMalformedHeader, n)
	}
	inputSet := make(map[int]struct{}, len(file.Header.InputVariables))
	for _, idx := range file.Header.InputVariables {
		// Index 0 is the constant-one wire, it can never be a public input.
		if idx <= 0 || idx >= n {
			return nil, &InconsistentVariableCountError{Index: idx, NbVariables: n}
		}
		if _, dup := inputSet[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate input variable index %d", ErrMalformedHeader, idx)
		}
		inputSet[idx] = struct{}{}
	}
	for _, idx := range file.Header.OutputVariables {
		if idx < 0 || idx >= n {
			return nil, &InconsistentVariableCountError{Index: idx, NbVariables: n}
		}
	}
	for _, c := range file.Constraints {
		for _, terms := range [][]Term{c.A, c.B, c.C} {
			for _, t := range terms {
				if t.Index < 0 || t.Index >= n {
					return nil, &InconsistentVariableCountError{Index: t.Index, NbVariables: n}
				}
			}
		}
	}

	inputs := make([]int, 0, len(inputSet))
	for idx := range inputSet {
		inputs = append(inputs, idx)
	}
	sort.Ints(inputs)

	// Every index in [1, n) that is not a public input is private witness.
	witness := make([]int, 0, n-1-len(inputs))
	for idx := 1; idx < n; idx++ {
		if _, isInput := inputSet[idx]; !isInput {
			witness = append(witness, idx)
		}
	}

	return &R1CS{
		Header:           file.Header,
		InputVariables:   inputs,
		WitnessVariables: witness,
		Constraints:      file.Constraints,
	}, nil
}

// ParseR1CS decodes and validates an R1CS jsonl stream in one step.
func ParseR1CS(r io.Reader) (*R1CS, error) {
	file, err := ParseR1CSFile(r)
	if err != nil {
		return nil, err
	}
	return NewR1CS(file)
}
