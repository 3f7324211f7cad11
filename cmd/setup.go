package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vocdoni/r1cs2gnark/prover"
)

var (
	setupR1CSPath     string
	setupPKPath       string
	setupVKPath       string
	setupContractPath string
)

func init() {
	setupCmd.Flags().StringVarP(&setupR1CSPath, "r1cs", "r", "", "path to the R1CS file")
	setupCmd.Flags().StringVarP(&setupPKPath, "proving-key", "p", "", "write the serialized proving key to this file")
	setupCmd.Flags().StringVarP(&setupVKPath, "verifying-key", "v", "", "write the serialized verifying key to this file")
	setupCmd.Flags().StringVarP(&setupContractPath, "contract", "c", "", "also write the Solidity verifier contract to this file")
	_ = setupCmd.MarkFlagRequired("r1cs")
	_ = setupCmd.MarkFlagRequired("proving-key")
	_ = setupCmd.MarkFlagRequired("verifying-key")
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a Groth16 trusted setup from an R1CS file",
	Long: "Create a Groth16 trusted setup from an R1CS file. Randomness comes " +
		"from the system PRNG; there is currently no way to supply it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return prover.Setup(setupR1CSPath, setupPKPath, setupVKPath, setupContractPath)
	},
}
