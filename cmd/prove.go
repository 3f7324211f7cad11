package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vocdoni/r1cs2gnark/prover"
)

var (
	provePKPath      string
	proveWitnessPath string
	proveR1CSPath    string
	proveProofPath   string
	proveEthereum    bool
)

func init() {
	proveCmd.Flags().StringVarP(&provePKPath, "proving-key", "p", "", "path to the serialized proving key")
	proveCmd.Flags().StringVarP(&proveWitnessPath, "witness", "w", "", "path to the witness file")
	proveCmd.Flags().StringVarP(&proveR1CSPath, "r1cs", "r", "", "path to the R1CS file")
	proveCmd.Flags().StringVarP(&proveProofPath, "proof", "o", "", "write the serialized proof to this file")
	proveCmd.Flags().BoolVarP(&proveEthereum, "ethereum", "e", false, "also write an Ethereum-compatible proof JSON next to the proof")
	_ = proveCmd.MarkFlagRequired("proving-key")
	_ = proveCmd.MarkFlagRequired("witness")
	_ = proveCmd.MarkFlagRequired("r1cs")
	_ = proveCmd.MarkFlagRequired("proof")
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Create a proof given a proving key, witness and R1CS file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return prover.Prove(provePKPath, proveWitnessPath, proveR1CSPath, proveProofPath, proveEthereum)
	},
}
