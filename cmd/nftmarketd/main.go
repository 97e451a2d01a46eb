package main

import (
	"os"

	"github.com/nftmx/node/cmd/nftmarketd/cmd"
)

// In main we call the rootCmd
func main() {
	rootCmd := cmd.NewRootCmd()

	if err := cmd.Execute(rootCmd, "NFTMARKET"); err != nil {
		os.Exit(1)
	}
}
