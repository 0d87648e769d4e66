// Package main provides the entry point for the RFP manager.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rfp_agent",
	Short: "RFP Manager HTTP API Server",
	Long:  "RFP Manager turns free-text procurement needs into structured RFPs and distributes them to vendor contacts by email, tracking per-recipient delivery outcome.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
