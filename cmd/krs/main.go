package main

import (
	"os"
)

func main() {
	// Execute has already reported the error on stderr.
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
