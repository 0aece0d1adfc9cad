package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-auditor/internal/audit"
	"github.com/jonathan/cv-auditor/internal/observability"
	"github.com/jonathan/cv-auditor/internal/schemas"
	"github.com/jonathan/cv-auditor/internal/types"
)

// newEngine is swapped in tests to pin the clock.
var newEngine = func() *audit.Engine {
	return audit.NewDefault()
}

// readProfile loads a profile file and checks it against the profile schema.
func readProfile(path string) (*types.CVProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	var profile types.CVProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeJSON indents v and writes it with a trailing newline.
func writeJSON(stdout io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return writeOutput(stdout, path, append(data, '\n'))
}

// printer returns a boxed-summary printer on stderr, or nil outside verbose mode.
func printer() *observability.Printer {
	if !settings.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}

// pick returns flag unless it is empty.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
