package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-validator/internal/config"
	"github.com/jonathan/resume-validator/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes POST /validate for resume documents,
GET /schema for the JSON Schema document, and GET /health. When JWT_SECRET is
set, /validate requires a bearer token (see the token command).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig(servePort)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	return server.New(cfg).Start()
}
