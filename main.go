package main

import (
	"os"

	"github.com/nesc-lab/paperpage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
