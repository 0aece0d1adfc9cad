package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-auditor/internal/report"
	"github.com/jonathan/cv-auditor/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a coaching report from a saved audit",
	Long:  "Reads an audit JSON file produced by the audit command and renders the plain-text coaching report.",
	RunE:  runReport,
}

var (
	reportInputFile  string
	reportOutputFile string
	reportName       string
)

func init() {
	reportCmd.Flags().StringVarP(&reportInputFile, "in", "i", "", "Path to audit JSON file (required)")
	reportCmd.Flags().StringVarP(&reportOutputFile, "out", "o", "", "Output file (default stdout)")
	reportCmd.Flags().StringVar(&reportName, "name", "", "Candidate name shown in the report header")

	if err := reportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(reportInputFile)
	if err != nil {
		return fmt.Errorf("failed to load audit: %w", err)
	}

	var result types.Audit
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("failed to parse audit %s: %w", reportInputFile, err)
	}

	text := report.GenerateCoachReport(&result, pick(reportName, settings.Name))
	return writeOutput(cmd.OutOrStdout(), reportOutputFile, []byte(text))
}
