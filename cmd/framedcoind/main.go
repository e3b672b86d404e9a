package main

import (
	"context"
	"os"

	"github.com/framedcoin/framedcoin/cmd/framedcoind/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
