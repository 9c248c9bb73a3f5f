// Package main provides the entry point for the placement autofill CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autofill_agent",
	Short: "Placement form autofill agent",
	Long:  "Autofill agent matches placement and job application forms against a saved answer profile and proposes fill candidates with confidence scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
