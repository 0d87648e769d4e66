package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/rfp-manager/internal/config"
	"github.com/jonathan/rfp-manager/internal/mail"
	"github.com/jonathan/rfp-manager/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for RFPs, vendors, proposals, and dispatch.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.LoadFromEnv()
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.GeminiAPIKey,
		SMTP: mail.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
