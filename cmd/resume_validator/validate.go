package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-validator/internal/observability"
	"github.com/jonathan/resume-validator/internal/types"
	"github.com/jonathan/resume-validator/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a resume document",
	Long: `Validates a resume document against the resume schema and prints either the
normalized resume or the full list of violations. Pass "-" to read from stdin.

Exit codes: 0 on success (ordering warnings do not fail the run), 1 on any
error-class violation, 2 when the input is not parseable JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateOutput  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to write the violation report as JSON (optional)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a formatted summary")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := readDocument(args[0])
	if err != nil {
		return err
	}

	resume, report := validation.Validate(data)

	if validateOutput != "" {
		if err := writeReport(validateOutput, report); err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stderr)

	// Warnings are informational; they print regardless of outcome.
	for _, w := range report.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Path, w.Details)
	}

	if resume != nil {
		if validateVerbose {
			printer.PrintResume(resume)
		}
		normalized, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal normalized resume: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(normalized))
		return nil
	}

	if validateVerbose {
		printer.PrintReport(report)
	}
	for _, v := range report.Errors() {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", v.Path, v.Details)
	}

	errs := report.Errors()
	if len(errs) == 1 && errs[0].Kind == types.KindMalformedInput {
		return &exitError{code: 2, message: "document is not parseable JSON"}
	}
	return &exitError{code: 1, message: fmt.Sprintf("validation found %d violation(s)", len(errs))}
}

// readDocument loads the document from a path, or from stdin for "-".
func readDocument(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func writeReport(path string, report *types.Report) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report to output file: %w", err)
	}
	return nil
}
