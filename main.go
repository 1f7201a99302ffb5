package main

import (
	"os"

	"github.com/TFMV/flatjson/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
