package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-auditor/internal/config"
	"github.com/jonathan/cv-auditor/internal/report"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a full audit of a CV profile",
	Long: "Validates a CV profile JSON file against the profile schema, runs every detection rule for " +
		"the target country and writes the audit as JSON or as a coaching report.",
	RunE: runAudit,
}

var (
	auditInputFile  string
	auditOutputFile string
	auditCountry    string
	auditFormat     string
	auditName       string
)

func init() {
	auditCmd.Flags().StringVarP(&auditInputFile, "in", "i", "", "Path to CV profile JSON file (required)")
	auditCmd.Flags().StringVarP(&auditOutputFile, "out", "o", "", "Output file (default stdout)")
	auditCmd.Flags().StringVarP(&auditCountry, "country", "c", "", "Target country code (default from config, FR)")
	auditCmd.Flags().StringVar(&auditFormat, "format", "", "Output format: json or text")
	auditCmd.Flags().StringVar(&auditName, "name", "", "Candidate name for the text report")

	if err := auditCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	format := pick(auditFormat, settings.Format)
	if format != config.FormatJSON && format != config.FormatText {
		return fmt.Errorf("unsupported format %q (want json or text)", format)
	}

	profile, err := readProfile(auditInputFile)
	if err != nil {
		return err
	}

	result, err := newEngine().Analyze(profile, pick(auditCountry, settings.Country))
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if p := printer(); p != nil {
		p.PrintAudit(result)
	}

	if format == config.FormatText {
		text := report.GenerateCoachReport(result, pick(auditName, settings.Name))
		return writeOutput(cmd.OutOrStdout(), auditOutputFile, []byte(text))
	}
	return writeJSON(cmd.OutOrStdout(), auditOutputFile, result)
}
