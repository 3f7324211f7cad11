package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vocdoni/r1cs2gnark/prover"
)

var (
	exportVKPath       string
	exportContractPath string
)

func init() {
	exportVerifierCmd.Flags().StringVarP(&exportVKPath, "verifying-key", "v", "", "path to the serialized verifying key")
	exportVerifierCmd.Flags().StringVarP(&exportContractPath, "contract", "c", "", "write the Solidity verifier contract to this file")
	_ = exportVerifierCmd.MarkFlagRequired("verifying-key")
	_ = exportVerifierCmd.MarkFlagRequired("contract")
}

var exportVerifierCmd = &cobra.Command{
	Use:   "export-verifier",
	Short: "Generate a Solidity verifier contract from a verifying key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return prover.ExportVerifier(exportVKPath, exportContractPath)
	},
}
