package main

import (
	"os"

	"github.com/kaptenjon/mathquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
