package main

import (
	"os"

	"github.com/unchain-tech/unchain-portal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
