package main

import (
	"os"

	"github.com/vaultpass/passforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
