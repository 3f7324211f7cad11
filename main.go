package main

import "github.com/vocdoni/r1cs2gnark/cmd"

func main() {
	cmd.Execute()
}
