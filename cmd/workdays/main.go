package main

import (
	"os"

	"workdays/cmd/workdays/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
