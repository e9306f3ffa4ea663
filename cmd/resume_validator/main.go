// Package main provides the resume_validator CLI for validating and
// normalizing resume documents against the resume schema.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_validator",
	Short: "Resume document validator",
	Long:  "Resume Validator checks structured resume documents against the resume schema and reports every structural and semantic violation, or emits the normalized resume.",
}

// exitError carries an explicit process exit code through cobra's RunE chain.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string {
	return e.message
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}
