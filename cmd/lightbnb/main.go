package main

import (
	"os"

	"github.com/deppfellow/lightbnb/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
