// Package prover wires parsed R1CS artifacts into gnark's Groth16 backend
// over BN254: trusted setup, proving, verification and Solidity verifier
// export. Artifact files use gnark's native WriteTo/ReadFrom encoding.
package prover

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	gr1cs "github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"

	"github.com/vocdoni/r1cs2gnark/circuit"
	"github.com/vocdoni/r1cs2gnark/parser"
)

func loadR1CS(path string) (*parser.R1CS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open R1CS file: %w", err)
	}
	defer f.Close()
	r1cs, err := parser.ParseR1CS(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse R1CS file %s: %w", path, err)
	}
	return r1cs, nil
}

func loadWitness(path string) (*parser.Witness, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open witness file: %w", err)
	}
	defer f.Close()
	w, err := parser.ParseWitness(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse witness file %s: %w", path, err)
	}
	return w, nil
}

func loadInputs(path string) ([]parser.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inputs file: %w", err)
	}
	defer f.Close()
	inputs, err := parser.ParseInputsFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inputs file %s: %w", path, err)
	}
	return inputs, nil
}

func compile(r1cs *parser.R1CS) (constraint.ConstraintSystem, error) {
	log := logger.Logger()
	log.Debug().
		Int("constraints", len(r1cs.Constraints)).
		Int("inputs", len(r1cs.InputVariables)).
		Int("witnesses", len(r1cs.WitnessVariables)).
		Msg("compiling constraint system")
	ccs, err := circuit.Compile(ecc.BN254.ScalarField(), gr1cs.NewBuilder, r1cs)
	if err != nil {
		return nil, fmt.Errorf("failed to compile constraint system: %w", err)
	}
	return ccs, nil
}

// writeTo serializes v into a freshly created file. The file is only
// created once the artifact it holds exists, so a failed run never leaves a
// partial key or proof behind.
func writeTo(path string, v io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := v.WriteTo(f); err != nil {
		return fmt.Errorf("failed to serialize to %s: %w", path, err)
	}
	return nil
}

func readFrom(path string, v io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := v.ReadFrom(f); err != nil {
		return fmt.Errorf("failed to deserialize %s: %w", path, err)
	}
	return nil
}

// Setup parses an R1CS file, synthesizes the constraint system without a
// witness and runs the Groth16 trusted setup, writing the proving and
// verifying keys to pkPath and vkPath. With a non-empty contractPath the
// matching Solidity verifier contract is written as well, the on-chain
// rendition of the verifying key.
func Setup(r1csPath, pkPath, vkPath, contractPath string) error {
	log := logger.Logger()

	r1cs, err := loadR1CS(r1csPath)
	if err != nil {
		return err
	}
	ccs, err := compile(r1cs)
	if err != nil {
		return err
	}

	log.Debug().Msg("creating trusted setup")
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("failed to create trusted setup: %w", err)
	}

	log.Info().Str("path", pkPath).Msg("serializing proving key")
	if err := writeTo(pkPath, pk); err != nil {
		return err
	}
	log.Info().Str("path", vkPath).Msg("serializing verifying key")
	if err := writeTo(vkPath, vk); err != nil {
		return err
	}

	if contractPath != "" {
		f, err := os.Create(contractPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", contractPath, err)
		}
		defer f.Close()
		log.Info().Str("path", contractPath).Msg("writing Solidity verifier")
		if err := vk.ExportSolidity(f); err != nil {
			return fmt.Errorf("failed to export Solidity verifier: %w", err)
		}
	}
	return nil
}

// Prove reads a proving key, re-synthesizes the constraint system from the
// R1CS file, binds the witness values and writes a Groth16 proof to
// proofPath. The constraint system is compiled from the same descriptor the
// setup used, so both enumerate constraints identically. With ethereum set,
// an Ethereum-friendly JSON rendition of the proof is written next to it as
// <proofPath stem>-eth.json.
func Prove(pkPath, witnessPath, r1csPath, proofPath string, ethereum bool) error {
	log := logger.Logger()

	pk := groth16.NewProvingKey(ecc.BN254)
	if err := readFrom(pkPath, pk); err != nil {
		return err
	}

	w, err := loadWitness(witnessPath)
	if err != nil {
		return err
	}
	r1cs, err := loadR1CS(r1csPath)
	if err != nil {
		return err
	}
	ccs, err := compile(r1cs)
	if err != nil {
		return err
	}

	fullWitness, err := circuit.FullWitness(r1cs, w)
	if err != nil {
		return fmt.Errorf("failed to build witness: %w", err)
	}

	log.Debug().Msg("creating proof for witness")
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return fmt.Errorf("failed to create proof: %w", err)
	}

	log.Info().Str("path", proofPath).Msg("serializing proof")
	if err := writeTo(proofPath, proof); err != nil {
		return err
	}

	if ethereum {
		ethPath := ethProofPath(proofPath)
		log.Info().Str("path", ethPath).Msg("serializing Ethereum-friendly proof")
		if err := writeEthProof(proof, ethPath); err != nil {
			return err
		}
	}
	return nil
}

// Verify checks a serialized proof against a verifying key and a public
// inputs file. It returns false, without error, when the proof does not
// verify.
func Verify(vkPath, proofPath, inputsPath string) (bool, error) {
	log := logger.Logger()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if err := readFrom(vkPath, vk); err != nil {
		return false, err
	}
	proof := groth16.NewProof(ecc.BN254)
	if err := readFrom(proofPath, proof); err != nil {
		return false, err
	}

	inputs, err := loadInputs(inputsPath)
	if err != nil {
		return false, err
	}
	publicWitness, err := circuit.PublicWitness(inputs)
	if err != nil {
		return false, err
	}

	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		log.Info().Err(err).Msg("proof verification failed")
		return false, nil
	}
	log.Info().Msg("proof verified")
	return true, nil
}

// Run executes setup, proving and verification in memory without
// serializing any intermediate artifact. Mostly useful for testing a
// circuit and witness pair.
func Run(r1csPath, witnessPath, inputsPath string) error {
	log := logger.Logger()

	r1cs, err := loadR1CS(r1csPath)
	if err != nil {
		return err
	}
	w, err := loadWitness(witnessPath)
	if err != nil {
		return err
	}
	inputs, err := loadInputs(inputsPath)
	if err != nil {
		return err
	}

	ccs, err := compile(r1cs)
	if err != nil {
		return err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return fmt.Errorf("failed to create trusted setup: %w", err)
	}

	fullWitness, err := circuit.FullWitness(r1cs, w)
	if err != nil {
		return fmt.Errorf("failed to build witness: %w", err)
	}
	log.Debug().Msg("creating proof for witness")
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return fmt.Errorf("failed to create proof: %w", err)
	}

	publicWitness, err := circuit.PublicWitness(inputs)
	if err != nil {
		return err
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	log.Info().Msg("proof verified")
	return nil
}

// ExportVerifier reads a verifying key and writes the matching Solidity
// verifier contract.
func ExportVerifier(vkPath, contractPath string) error {
	log := logger.Logger()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if err := readFrom(vkPath, vk); err != nil {
		return err
	}

	f, err := os.Create(contractPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", contractPath, err)
	}
	defer f.Close()

	log.Info().Str("path", contractPath).Msg("writing Solidity verifier")
	if err := vk.ExportSolidity(f); err != nil {
		return fmt.Errorf("failed to export Solidity verifier: %w", err)
	}
	return nil
}
