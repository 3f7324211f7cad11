package parser

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestParseFieldElement(t *testing.T) {
	e, err := ParseFieldElement("12")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	var want fr.Element
	want.SetUint64(12)
	if !e.Equal(&want) {
		t.Fatalf("expected 12, got %s", e.String())
	}
}

func TestParseFieldElementReducesModulus(t *testing.T) {
	overflow := new(big.Int).Add(fr.Modulus(), big.NewInt(1))
	e, err := ParseFieldElement(overflow.String())
	if err != nil {
		t.Fatalf("values above the modulus must reduce, not fail: %v", err)
	}
	var one fr.Element
	one.SetOne()
	if !e.Equal(&one) {
		t.Fatalf("expected modulus+1 to reduce to 1, got %s", e.String())
	}
}

func TestParseFieldElementInvalid(t *testing.T) {
	for _, s := range []string{"", "xyz", "-5", "12.5", "0x12"} {
		if _, err := ParseFieldElement(s); !errors.Is(err, ErrInvalidFieldElement) {
			t.Fatalf("expected ErrInvalidFieldElement for %q, got %v", s, err)
		}
	}
}

func TestParseCharacteristic(t *testing.T) {
	s := "21888242871839275222246405745257275088548364400416034343698204186575808495617"
	bi, err := ParseCharacteristic(s)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if bi.String() != s {
		t.Fatalf("round trip mismatch: %s", bi.String())
	}
	if _, err := ParseCharacteristic("nope"); !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}
