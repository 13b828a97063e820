// Package main provides the lintkit CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/lintkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
