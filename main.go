package main

import (
	"os"

	"github.com/eduwiki/eduwiki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
