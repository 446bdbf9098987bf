package main

import (
	"os"

	"github.com/kit-coca/coca-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
