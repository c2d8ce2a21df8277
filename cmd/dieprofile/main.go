// main is the entry point of the dieprofile CLI.
package main

import (
	"github.com/alutools/dieprofile/cmd"
	"github.com/alutools/dieprofile/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("dieprofile", err)
	}
}
