package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var detectLanguageCmd = &cobra.Command{
	Use:   "detect-language",
	Short: "Report the dominant language of a CV profile",
	RunE:  runDetectLanguage,
}

var detectInputFile string

func init() {
	detectLanguageCmd.Flags().StringVarP(&detectInputFile, "in", "i", "", "Path to CV profile JSON file (required)")

	if err := detectLanguageCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(detectLanguageCmd)
}

func runDetectLanguage(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(detectInputFile)
	if err != nil {
		return err
	}

	analysis := newEngine().DetectLanguage(profile)
	if p := printer(); p != nil {
		p.PrintLanguageAnalysis(analysis)
	}
	return writeJSON(cmd.OutOrStdout(), "", analysis)
}
