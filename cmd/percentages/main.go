package main

import (
	"fmt"
	"os"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/cmd/percentages/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
