package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/cv-auditor/internal/config"
)

const validProfileJSON = `{
	"personalInfo": {
		"firstName": "Jean",
		"lastName": "Dupont",
		"title": "Développeur Backend",
		"email": "jean.dupont@example.com",
		"phone": "+33 6 12 34 56 78",
		"linkedin": "https://www.linkedin.com/in/jeandupont"
	},
	"summary": "Développeur backend avec six ans d'expérience dans la conception de services pour les équipes produit.",
	"experiences": [
		{"role": "Développeur", "company": "Acme", "startDate": "2019-01", "endDate": "2024-06",
		 "tasks": ["Réduit la latence de 40% sur les services de paiement", "Migré 12 services vers Kubernetes"]}
	],
	"skills": ["Go", "PostgreSQL", "Docker", "Kubernetes", "Linux"]
}`

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// execute runs the root command in-process and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommandState(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetCommandState restores every flag to its default so runs do not leak
// values into each other.
func resetCommandState(cmd *cobra.Command) {
	settings = config.Defaults()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommandState(sub)
	}
}

// getBinaryPath returns the path to a prebuilt cv_audit binary, skipping the
// test when none exists.
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI binary tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "cv_audit")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/cv_audit ./cmd/cv_audit'", binaryPath)
	}
	return binaryPath
}
