package parser

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Header is the first line of every jsonl artifact. The same shape opens
// both R1CS and witness files.
type Header struct {
	ExtensionDegree     int
	FieldCharacteristic *big.Int
	InputVariables      []int
	NbConstraints       int
	NbVariables         int
	OutputVariables     []int
}

type headerJSON struct {
	ExtensionDegree     int    `json:"extension_degree"`
	FieldCharacteristic string `json:"field_characteristic"`
	InputVariables      []int  `json:"input_variables"`
	NbConstraints       int    `json:"n_constraints"`
	NbVariables         int    `json:"n_variables"`
	OutputVariables     []int  `json:"output_variables"`
}

// UnmarshalJSON decodes the header, parsing the field characteristic from
// its decimal string form.
func (h *Header) UnmarshalJSON(data []byte) error {
	var raw headerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	characteristic, err := ParseCharacteristic(raw.FieldCharacteristic)
	if err != nil {
		return err
	}
	h.ExtensionDegree = raw.ExtensionDegree
	h.FieldCharacteristic = characteristic
	h.InputVariables = raw.InputVariables
	h.NbConstraints = raw.NbConstraints
	h.NbVariables = raw.NbVariables
	h.OutputVariables = raw.OutputVariables
	return nil
}

// Term is one coefficient*variable pair of a linear combination, encoded as
// a 2-element array [coefficient-string, index].
type Term struct {
	Coeff fr.Element
	Index int
}

// UnmarshalJSON decodes a [coeff-string, index] pair.
func (t *Term) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [coefficient, index] pair, got %d elements", len(pair))
	}
	var coeff string
	if err := json.Unmarshal(pair[0], &coeff); err != nil {
		return fmt.Errorf("coefficient: %w", err)
	}
	elem, err := ParseFieldElement(coeff)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(pair[1], &t.Index); err != nil {
		return fmt.Errorf("variable index: %w", err)
	}
	t.Coeff = elem
	return nil
}

// Constraint is one R1CS row enforcing A·B = C. Duplicate indices within a
// combination are legal and sum when evaluated.
type Constraint struct {
	A []Term `json:"A"`
	B []Term `json:"B"`
	C []Term `json:"C"`
}

// Assignment is one (variable index, value) row of a witness or inputs
// file, encoded as a 2-element array [index, coefficient-string].
type Assignment struct {
	Index int
	Value fr.Element
}

// UnmarshalJSON decodes an [index, coeff-string] pair.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [index, value] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &a.Index); err != nil {
		return fmt.Errorf("variable index: %w", err)
	}
	var value string
	if err := json.Unmarshal(pair[1], &value); err != nil {
		return fmt.Errorf("value: %w", err)
	}
	elem, err := ParseFieldElement(value)
	if err != nil {
		return err
	}
	a.Value = elem
	return nil
}
