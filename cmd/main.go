package main

import (
	"os"

	stylocmd "github.com/quantext/stylo/cmd/stylo"
)

func main() {
	if err := stylocmd.Execute(); err != nil {
		os.Exit(1)
	}
}
