package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-auditor/internal/observability"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the supported target countries",
	RunE:  runCountries,
}

var countriesJSON bool

func init() {
	countriesCmd.Flags().BoolVar(&countriesJSON, "json", false, "Print the full rules as JSON")
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(cmd *cobra.Command, _ []string) error {
	rules := newEngine().Countries().All()
	if countriesJSON {
		return writeJSON(cmd.OutOrStdout(), "", rules)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCountries(rules)
	return nil
}
