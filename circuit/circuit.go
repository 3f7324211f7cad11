// Package circuit synthesizes a gnark constraint system from a parsed R1CS
// descriptor. The same Define pass runs during trusted setup (no witness)
// and proving (with witness); both must enumerate variables and constraints
// identically or the resulting keys describe different relations.
package circuit

import (
	"math/big"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/r1cs2gnark/parser"
)

// Circuit enforces every constraint row of a parsed descriptor. Inputs
// carries one public variable per descriptor input index and Witness one
// secret variable per witness index, both in ascending index order.
type Circuit struct {
	Inputs  []frontend.Variable `gnark:",public"`
	Witness []frontend.Variable

	r1cs *parser.R1CS
}

// Placeholder returns the compile-time shape of the circuit, with variable
// slices sized from the descriptor and no values bound.
func Placeholder(r1cs *parser.R1CS) *Circuit {
	return &Circuit{
		Inputs:  make([]frontend.Variable, len(r1cs.InputVariables)),
		Witness: make([]frontend.Variable, len(r1cs.WitnessVariables)),
		r1cs:    r1cs,
	}
}

// Assign binds concrete values to the circuit variables. With a nil witness
// every variable takes the value 1; the placeholder is never
// cryptographically meaningful, it only lets key generation synthesize a
// structurally identical system without real data. A supplied witness must
// cover every declared index or the assignment fails with
// MissingWitnessValueError.
func Assign(r1cs *parser.R1CS, w *parser.Witness) (*Circuit, error) {
	c := Placeholder(r1cs)
	for i, idx := range r1cs.InputVariables {
		if w == nil {
			c.Inputs[i] = 1
			continue
		}
		value, ok := w.InputValues[idx]
		if !ok {
			return nil, &parser.MissingWitnessValueError{Index: idx}
		}
		c.Inputs[i] = value.BigInt(new(big.Int))
	}
	for i, idx := range r1cs.WitnessVariables {
		if w == nil {
			c.Witness[i] = 1
			continue
		}
		value, ok := w.WitnessValues[idx]
		if !ok {
			return nil, &parser.MissingWitnessValueError{Index: idx}
		}
		c.Witness[i] = value.BigInt(new(big.Int))
	}
	return c, nil
}

// Define resolves every constraint term to its allocated variable and
// enforces A·B = C per row, in file order.
func (c *Circuit) Define(api frontend.API) error {
	vars := make(map[int]frontend.Variable, len(c.Inputs)+len(c.Witness)+1)
	// Index 0 is the reserved constant-one wire, never allocated.
	vars[0] = 1
	for i, idx := range c.r1cs.InputVariables {
		vars[idx] = c.Inputs[i]
	}
	for i, idx := range c.r1cs.WitnessVariables {
		vars[idx] = c.Witness[i]
	}

	for _, row := range c.r1cs.Constraints {
		a, err := combine(api, vars, row.A)
		if err != nil {
			return err
		}
		b, err := combine(api, vars, row.B)
		if err != nil {
			return err
		}
		o, err := combine(api, vars, row.C)
		if err != nil {
			return err
		}
		api.AssertIsEqual(api.Mul(a, b), o)
	}
	return nil
}

// combine folds coefficient*variable terms into one linear combination.
// Duplicate indices accumulate. An unresolvable index aborts the whole
// synthesis: a silently dropped term would weaken the relation.
func combine(api frontend.API, vars map[int]frontend.Variable, terms []parser.Term) (frontend.Variable, error) {
	acc := frontend.Variable(0)
	for _, t := range terms {
		v, ok := vars[t.Index]
		if !ok {
			return nil, &parser.UnknownVariableIndexError{Index: t.Index}
		}
		acc = api.Add(acc, api.Mul(t.Coeff.BigInt(new(big.Int)), v))
	}
	return acc, nil
}

// Compile synthesizes the descriptor into a constraint system. The builder
// is caller-supplied: r1cs.NewBuilder targets Groth16, scs.NewBuilder
// targets PLONK.
func Compile(field *big.Int, newBuilder frontend.NewBuilder, r1cs *parser.R1CS, opts ...frontend.CompileOption) (constraint.ConstraintSystem, error) {
	opts = append([]frontend.CompileOption{frontend.WithCapacity(len(r1cs.Constraints))}, opts...)
	return frontend.Compile(field, newBuilder, Placeholder(r1cs), opts...)
}
