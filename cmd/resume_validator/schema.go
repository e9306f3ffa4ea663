package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-validator/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or exercise the embedded JSON Schema",
	Long: `Verifies that the embedded JSON Schema document compiles, then prints it.
With --doc, additionally cross-validates the given document against the
schema using an independent JSON Schema validator.`,
	RunE: runSchema,
}

var schemaDoc string

func init() {
	schemaCmd.Flags().StringVar(&schemaDoc, "doc", "", "Path to a document to cross-validate against the schema (optional)")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, _ []string) error {
	if err := schema.CheckSchemaDocument(); err != nil {
		return fmt.Errorf("schema self-check failed: %w", err)
	}

	if schemaDoc == "" {
		fmt.Fprintln(os.Stdout, schema.Document())
		return nil
	}

	data, err := os.ReadFile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if err := schema.CrossValidate(data); err != nil {
		return fmt.Errorf("document does not conform to the resume schema: %w", err)
	}

	fmt.Fprintln(os.Stdout, "document conforms to the resume schema")
	return nil
}
