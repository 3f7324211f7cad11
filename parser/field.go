package parser

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ParseCharacteristic parses the header's field characteristic from its
// decimal string form.
func ParseCharacteristic(s string) (*big.Int, error) {
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok || bi.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is not a non-negative decimal integer", ErrMalformedHeader, s)
	}
	return bi, nil
}

// ParseFieldElement parses a decimal string into a BN254 scalar. Values
// larger than the field modulus are reduced, matching how the backend's
// scalar type is constructed from an integer.
func ParseFieldElement(s string) (fr.Element, error) {
	var e fr.Element
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok || bi.Sign() < 0 {
		return e, fmt.Errorf("%w: %q is not a non-negative decimal integer", ErrInvalidFieldElement, s)
	}
	e.SetBigInt(bi)
	return e, nil
}
