package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-auditor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the audit, quick-check, report and language endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := servePort
	if port == 0 {
		port = settings.Port
	}

	srv := server.New(server.Config{
		Port:           port,
		DefaultCountry: settings.Country,
		RateLimit:      settings.RateLimit,
		RateBurst:      settings.RateBurst,
	}, newEngine())

	return srv.Start()
}
