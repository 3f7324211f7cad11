package parser

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// WitnessFile is the raw decoded witness artifact: a header (same shape as
// the R1CS header) plus one [index, value] row per non-constant variable.
type WitnessFile struct {
	Header      Header
	Assignments []Assignment
}

// ParseWitnessFile decodes a witness jsonl stream.
func ParseWitnessFile(r io.Reader) (*WitnessFile, error) {
	records := NewRecords(r)
	header, err := records.Header()
	if err != nil {
		return nil, err
	}
	var assignments []Assignment
	for {
		var a Assignment
		ok, err := records.Next(&a)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		assignments = append(assignments, a)
	}
	return &WitnessFile{Header: *header, Assignments: assignments}, nil
}

// Witness is a raw assignment split into public input values and private
// witness values, keyed by variable index.
type Witness struct {
	InputValues   map[int]fr.Element
	WitnessValues map[int]fr.Element
}

// Partition splits the assignments using the witness file's own declared
// input-index set. Index 0 is the implicit constant one and is dropped;
// every other non-input index lands in WitnessValues.
func (f *WitnessFile) Partition() *Witness {
	inputSet := make(map[int]struct{}, len(f.Header.InputVariables))
	for _, idx := range f.Header.InputVariables {
		inputSet[idx] = struct{}{}
	}
	w := &Witness{
		InputValues:   make(map[int]fr.Element),
		WitnessValues: make(map[int]fr.Element),
	}
	for _, a := range f.Assignments {
		if _, isInput := inputSet[a.Index]; isInput {
			w.InputValues[a.Index] = a.Value
		} else if a.Index != 0 {
			w.WitnessValues[a.Index] = a.Value
		}
	}
	return w
}

// ParseWitness decodes and partitions a witness jsonl stream in one step.
func ParseWitness(r io.Reader) (*Witness, error) {
	file, err := ParseWitnessFile(r)
	if err != nil {
		return nil, err
	}
	return file.Partition(), nil
}
