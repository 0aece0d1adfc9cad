package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quickCheckCmd = &cobra.Command{
	Use:   "quick-check",
	Short: "Score a CV profile with the contact, regional and content rules only",
	RunE:  runQuickCheck,
}

var (
	quickInputFile string
	quickCountry   string
)

func init() {
	quickCheckCmd.Flags().StringVarP(&quickInputFile, "in", "i", "", "Path to CV profile JSON file (required)")
	quickCheckCmd.Flags().StringVarP(&quickCountry, "country", "c", "", "Target country code (default from config, FR)")

	if err := quickCheckCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(quickCheckCmd)
}

func runQuickCheck(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(quickInputFile)
	if err != nil {
		return err
	}

	result, err := newEngine().QuickCheck(profile, pick(quickCountry, settings.Country))
	if err != nil {
		return fmt.Errorf("quick check failed: %w", err)
	}

	if p := printer(); p != nil {
		p.PrintQuickCheck(result)
	}
	return writeJSON(cmd.OutOrStdout(), "", result)
}
