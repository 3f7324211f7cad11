package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vocdoni/r1cs2gnark/prover"
)

var (
	runR1CSPath    string
	runWitnessPath string
	runInputsPath  string
)

func init() {
	runCmd.Flags().StringVarP(&runR1CSPath, "r1cs", "r", "", "path to the R1CS file")
	runCmd.Flags().StringVarP(&runWitnessPath, "witness", "w", "", "path to the witness file")
	runCmd.Flags().StringVarP(&runInputsPath, "inputs", "i", "", "path to the public inputs file")
	_ = runCmd.MarkFlagRequired("r1cs")
	_ = runCmd.MarkFlagRequired("witness")
	_ = runCmd.MarkFlagRequired("inputs")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run setup, proving and verification end to end without writing any file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return prover.Run(runR1CSPath, runWitnessPath, runInputsPath)
	},
}
