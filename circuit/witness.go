package circuit

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/r1cs2gnark/parser"
)

// FullWitness builds the prover-side witness for a descriptor and a
// partitioned assignment.
func FullWitness(r1cs *parser.R1CS, w *parser.Witness) (witness.Witness, error) {
	assignment, err := Assign(r1cs, w)
	if err != nil {
		return nil, err
	}
	full, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("failed to build full witness: %w", err)
	}
	return full, nil
}

// PublicWitness builds the verifier-side witness from a standalone inputs
// file sequence. Values are re-sorted by variable index so the result is
// independent of the file's row order.
func PublicWitness(inputs []parser.Assignment) (witness.Witness, error) {
	values := parser.InputVector(inputs)
	assignment := &Circuit{Inputs: make([]frontend.Variable, len(values))}
	for i := range values {
		assignment.Inputs[i] = values[i].BigInt(new(big.Int))
	}
	pub, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to build public witness: %w", err)
	}
	return pub, nil
}
