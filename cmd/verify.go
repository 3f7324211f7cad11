package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vocdoni/r1cs2gnark/prover"
)

var (
	verifyVKPath     string
	verifyProofPath  string
	verifyInputsPath string
)

func init() {
	verifyCmd.Flags().StringVarP(&verifyVKPath, "verifying-key", "v", "", "path to the serialized verifying key")
	verifyCmd.Flags().StringVarP(&verifyProofPath, "proof", "p", "", "path to the serialized proof")
	verifyCmd.Flags().StringVarP(&verifyInputsPath, "inputs", "i", "", "path to the public inputs file")
	_ = verifyCmd.MarkFlagRequired("verifying-key")
	_ = verifyCmd.MarkFlagRequired("proof")
	_ = verifyCmd.MarkFlagRequired("inputs")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proof given a verifying key, proof and inputs file",
	RunE: func(cmd *cobra.Command, args []string) error {
		valid, err := prover.Verify(verifyVKPath, verifyProofPath, verifyInputsPath)
		if err != nil {
			return err
		}
		if !valid {
			return errors.New("proof verification failed")
		}
		return nil
	},
}
