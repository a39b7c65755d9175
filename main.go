package main

import (
	"os"

	"github.com/jlozano/riskprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
