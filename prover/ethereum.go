package prover

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// EthProof is the Ethereum-friendly proof artifact: the calldata accepted by
// the exported Solidity verifier plus the raw gnark serialization, both hex
// encoded.
type EthProof struct {
	EncodedProof string `json:"encoded_proof"`
	RawProof     string `json:"raw_proof"`
}

// NewEthProof converts a Groth16 proof into its Ethereum-friendly encoding.
func NewEthProof(proof groth16.Proof) (*EthProof, error) {
	// Cast into the bn254 proof so we can call MarshalSolidity.
	p, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return nil, fmt.Errorf("expected a bn254 proof, got %T", proof)
	}
	var buf bytes.Buffer
	if _, err := proof.WriteRawTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize raw proof: %w", err)
	}
	return &EthProof{
		EncodedProof: hex.EncodeToString(p.MarshalSolidity()),
		RawProof:     hex.EncodeToString(buf.Bytes()),
	}, nil
}

// ethProofPath derives the Ethereum proof artifact path from the native
// proof path: <stem>-eth.json next to it.
func ethProofPath(proofPath string) string {
	ext := filepath.Ext(proofPath)
	return strings.TrimSuffix(proofPath, ext) + "-eth.json"
}

func writeEthProof(proof groth16.Proof, path string) error {
	eth, err := NewEthProof(proof)
	if err != nil {
		return err
	}
	data, err := json.Marshal(eth)
	if err != nil {
		return fmt.Errorf("failed to marshal Ethereum proof: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
